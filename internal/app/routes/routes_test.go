package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dhiya-infra-service/internal/app/middleware"
	"dhiya-infra-service/internal/domain/models"
	"dhiya-infra-service/internal/domain/services"
	"dhiya-infra-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testClientSeq int

// testServer 用独立的内存数据库和唯一的客户端IP搭建完整路由
type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	ip     string
	t      *testing.T
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.TenderRequest{},
		&models.RequestNote{},
		&models.ContactMessage{},
		&models.Tender{},
		&models.Testimonial{},
	))

	cfg := &config.Config{
		EnvType:       "LOCAL",
		ServerPort:    "5000",
		CORSOrigin:    "http://localhost:5173",
		JWTSecretKey:  "test-secret-key",
		AdminEmail:    "admin@dhiyainfra.com",
		AdminPassword: "admin123",
	}

	// 每个测试用独立IP，避免共享限流桶
	testClientSeq++
	ip := fmt.Sprintf("10.1.%d.%d", testClientSeq/250, testClientSeq%250+1)

	// 响应缓存是进程级的，测试结束后清空
	t.Cleanup(middleware.PurgeCache)

	return &testServer{
		router: SetupRouter(db, cfg, nil),
		db:     db,
		cfg:    cfg,
		ip:     ip,
		t:      t,
	}
}

func (s *testServer) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", s.ip)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	s.t.Helper()
	var resp map[string]interface{}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *testServer) login() string {
	s.t.Helper()
	w := s.request(http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    s.cfg.AdminEmail,
		"password": s.cfg.AdminPassword,
	})
	require.Equal(s.t, http.StatusOK, w.Code)

	resp := s.decode(w)
	data := resp["data"].(map[string]interface{})
	token := data["token"].(string)
	require.NotEmpty(s.t, token)
	return token
}

func validTenderRequestBody() gin.H {
	return gin.H{
		"companyName":        "Acme Builders Pvt. Ltd.",
		"contactPerson":      "Ravi Kumar",
		"email":              "ravi@acmebuilders.com",
		"phone":              "9876543210",
		"projectType":        "commercial",
		"projectLocation":    "Coimbatore, Tamil Nadu",
		"estimatedBudget":    "₹5 Crores",
		"preferredTimeline":  "12 months",
		"projectDescription": "Construction of a 5-storey commercial complex with basement parking",
	}
}

func (s *testServer) tenderRequestCount() int64 {
	s.t.Helper()
	var count int64
	require.NoError(s.t, s.db.Model(&models.TenderRequest{}).Count(&count).Error)
	return count
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodGet, "/api/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := s.decode(w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "pong", data["message"])
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := s.decode(w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, true, data["database"])
}

func TestSubmitTenderRequest(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodPost, "/api/tender-requests", "", validTenderRequestBody())
	require.Equal(t, http.StatusCreated, w.Code)

	resp := s.decode(w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "new", data["status"])
	assert.Contains(t, data["referenceNo"].(string), "TR-")
	assert.Equal(t, int64(1), s.tenderRequestCount())
}

func TestSubmitTenderRequestValidation(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		name  string
		mod   func(gin.H)
		field string
	}{
		{"missing company", func(b gin.H) { delete(b, "companyName") }, "companyName"},
		{"malformed email", func(b gin.H) { b["email"] = "not-an-email" }, "email"},
		{"short phone", func(b gin.H) { b["phone"] = "12345" }, "phone"},
		{"short description", func(b gin.H) { b["projectDescription"] = "too short" }, "projectDescription"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := validTenderRequestBody()
			tc.mod(body)

			w := s.request(http.MethodPost, "/api/tender-requests", "", body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := s.decode(w)
			data := resp["data"].(map[string]interface{})
			fields := data["errors"].(map[string]interface{})
			assert.Contains(t, fields, tc.field)
		})
	}

	// 校验失败不落库
	assert.Equal(t, int64(0), s.tenderRequestCount())
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	// 正确凭据
	token := s.login()
	assert.NotEmpty(t, token)

	// 错误密码与错误邮箱返回同样的401
	w := s.request(http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    s.cfg.AdminEmail,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	badPass := s.decode(w)

	w = s.request(http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": s.cfg.AdminPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	badEmail := s.decode(w)

	assert.Equal(t, badPass["message"], badEmail["message"])
}

func TestAuthMe(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	w := s.request(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := s.decode(w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, s.cfg.AdminEmail, data["email"])

	// 无令牌
	w = s.request(http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodGet, "/api/admin/tender-requests", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodGet, "/api/admin/tender-requests", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	s := newTestServer(t)

	// 合法签名但角色不是admin的令牌：能过校验，过不了权限检查
	token, err := services.NewJWTService(s.cfg).GenerateToken(7, "user")
	require.NoError(t, err)

	w := s.request(http.MethodGet, "/api/admin/tender-requests", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.request(http.MethodGet, "/api/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPublicRateLimit(t *testing.T) {
	s := newTestServer(t)

	// 公共入口突发容量为20，同一IP连续超发后开始返回429
	limited := 0
	for i := 0; i < 40; i++ {
		w := s.request(http.MethodGet, "/api/ping", "", nil)
		switch w.Code {
		case http.StatusOK:
		case http.StatusTooManyRequests:
			limited++
		default:
			t.Fatalf("unexpected status %d", w.Code)
		}
	}
	assert.Greater(t, limited, 0)
}

func TestTenderRequestLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	// 提交请求
	w := s.request(http.MethodPost, "/api/tender-requests", "", validTenderRequestBody())
	require.Equal(t, http.StatusCreated, w.Code)
	created := s.decode(w)["data"].(map[string]interface{})
	id := fmt.Sprintf("%v", int64(created["id"].(float64)))

	// 列表可见，初始状态new
	w = s.request(http.MethodGet, "/api/admin/tender-requests", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	listData := s.decode(w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), listData["total"])
	assert.Equal(t, float64(1), listData["pages"])
	assert.Equal(t, float64(1), listData["currentPage"])

	// 状态推进
	w = s.request(http.MethodPatch, "/api/admin/tender-requests/"+id+"/status", token, gin.H{"status": "reviewed"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := s.decode(w)["data"].(map[string]interface{})
	assert.Equal(t, "reviewed", updated["status"])

	// 非法状态被拒绝，状态不变
	w = s.request(http.MethodPatch, "/api/admin/tender-requests/"+id+"/status", token, gin.H{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.request(http.MethodGet, "/api/admin/tender-requests/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := s.decode(w)["data"].(map[string]interface{})
	assert.Equal(t, "reviewed", detail["status"])

	// 添加备注
	w = s.request(http.MethodPost, "/api/admin/tender-requests/"+id+"/notes", token, gin.H{"content": "Spoke with the client"})
	require.Equal(t, http.StatusOK, w.Code)
	withNote := s.decode(w)["data"].(map[string]interface{})
	notes := withNote["notes"].([]interface{})
	require.Len(t, notes, 1)

	// 空备注被拒绝
	w = s.request(http.MethodPost, "/api/admin/tender-requests/"+id+"/notes", token, gin.H{"content": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 状态过滤
	w = s.request(http.MethodGet, "/api/admin/tender-requests?status=contacted", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	filtered := s.decode(w)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), filtered["total"])

	w = s.request(http.MethodGet, "/api/admin/tender-requests?status=reviewed", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	filtered = s.decode(w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), filtered["total"])

	// 不存在的ID
	w = s.request(http.MethodGet, "/api/admin/tender-requests/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactMessage(t *testing.T) {
	s := newTestServer(t)

	w := s.request(http.MethodPost, "/api/contact", "", gin.H{
		"name":    "Suresh Menon",
		"email":   "suresh@example.com",
		"subject": "Site visit enquiry",
		"message": "I would like to schedule a site visit next week.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := s.decode(w)["data"].(map[string]interface{})
	assert.Contains(t, created["referenceNo"].(string), "CM-")

	// 缺少必填字段
	w = s.request(http.MethodPost, "/api/contact", "", gin.H{
		"name":  "Suresh Menon",
		"email": "suresh@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 管理端列表
	token := s.login()
	w = s.request(http.MethodGet, "/api/admin/contact-messages", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := s.decode(w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), list["total"])
}

func TestPublicContent(t *testing.T) {
	s := newTestServer(t)

	require.NoError(t, s.db.Create(&models.Tender{
		Title:          "Downtown Office Complex",
		Description:    "A state-of-the-art office complex",
		Location:       "Bangalore, Karnataka",
		ClientName:     "TechSpace Developers Ltd.",
		Value:          "₹250 Crores",
		CompletionDate: "January 2023",
	}).Error)
	require.NoError(t, s.db.Create(&models.Testimonial{
		Name:    "Rajesh Kumar",
		Company: "TechSpace Developers Ltd.",
		Content: "Delivered ahead of schedule",
		Rating:  5,
	}).Error)

	w := s.request(http.MethodGet, "/api/tenders", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tenders := s.decode(w)["data"].([]interface{})
	assert.Len(t, tenders, 1)

	w = s.request(http.MethodGet, "/api/testimonials", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	testimonials := s.decode(w)["data"].([]interface{})
	assert.Len(t, testimonials, 1)
}

func TestPublicContentCached(t *testing.T) {
	s := newTestServer(t)

	require.NoError(t, s.db.Create(&models.Tender{
		Title:          "Riverside Bridge",
		Description:    "A four-lane bridge across the Noyyal river",
		Location:       "Coimbatore, Tamil Nadu",
		ClientName:     "State Highways Department",
		Value:          "₹120 Crores",
		CompletionDate: "March 2024",
	}).Error)

	w := s.request(http.MethodGet, "/api/tenders", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, s.decode(w)["data"].([]interface{}), 1)

	// 缓存有效期内新增的数据不可见
	require.NoError(t, s.db.Create(&models.Tender{
		Title:          "Harbour Container Terminal",
		Description:    "Deep-water container terminal expansion",
		Location:       "Tuticorin, Tamil Nadu",
		ClientName:     "Port Trust",
		Value:          "₹300 Crores",
		CompletionDate: "August 2025",
	}).Error)

	w = s.request(http.MethodGet, "/api/tenders", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, s.decode(w)["data"].([]interface{}), 1)

	// 清空缓存后新数据立即可见
	middleware.PurgeCache()

	w = s.request(http.MethodGet, "/api/tenders", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, s.decode(w)["data"].([]interface{}), 2)
}

func TestDashboardStats(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	w := s.request(http.MethodPost, "/api/tender-requests", "", validTenderRequestBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.request(http.MethodGet, "/api/admin/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	stats := s.decode(w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["totalRequests"])
	assert.Equal(t, float64(1), stats["newRequestsToday"])
	assert.Len(t, stats["monthlyRequests"].([]interface{}), 12)
}

func TestUserManagement(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	w := s.request(http.MethodGet, "/api/admin/users", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := s.decode(w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), list["total"])

	// 最后一个管理员不能删除
	users := list["users"].([]interface{})
	id := fmt.Sprintf("%v", int64(users[0].(map[string]interface{})["id"].(float64)))

	w = s.request(http.MethodDelete, "/api/admin/users/"+id, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 更新用户名
	w = s.request(http.MethodPut, "/api/admin/users/"+id, token, gin.H{"username": "superadmin"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := s.decode(w)["data"].(map[string]interface{})
	assert.Equal(t, "superadmin", updated["username"])

	// 角色只接受admin和user
	w = s.request(http.MethodPut, "/api/admin/users/"+id, token, gin.H{"role": "superuser"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.request(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := s.decode(w)["data"].(map[string]interface{})
	assert.Equal(t, "admin", me["role"])
}
