package services

import (
	"testing"
	"time"

	"dhiya-infra-service/internal/domain/models"
	"dhiya-infra-service/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.TenderRequest{},
		&models.RequestNote{},
		&models.ContactMessage{},
		&models.Tender{},
		&models.Testimonial{},
	)
	require.NoError(t, err)

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		EnvType:       "LOCAL",
		JWTSecretKey:  "test-secret-key",
		AdminEmail:    "admin@dhiyainfra.com",
		AdminPassword: "admin123",
	}
}

func newTenderRequest() *models.TenderRequest {
	return &models.TenderRequest{
		CompanyName:        "Acme Builders Pvt. Ltd.",
		ContactPerson:      "Ravi Kumar",
		Email:              "ravi@acmebuilders.com",
		Phone:              "9876543210",
		ProjectType:        "commercial",
		ProjectLocation:    "Coimbatore, Tamil Nadu",
		EstimatedBudget:    "₹5 Crores",
		PreferredTimeline:  "12 months",
		ProjectDescription: "Construction of a 5-storey commercial complex with basement parking",
	}
}

func TestTenderRequestCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewTenderRequestService(db, newTestConfig())

	req := newTenderRequest()
	// 提交方无法指定初始状态
	req.Status = models.RequestStatusCompleted

	err := svc.Create(req)
	require.NoError(t, err)

	assert.NotZero(t, req.ID)
	assert.Equal(t, models.RequestStatusNew, req.Status)
	assert.NotEmpty(t, req.ReferenceNo)
	assert.Contains(t, req.ReferenceNo, "TR-")
}

func TestTenderRequestGetByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewTenderRequestService(db, newTestConfig())

	req := newTenderRequest()
	require.NoError(t, svc.Create(req))

	found, err := svc.GetByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, req.CompanyName, found.CompanyName)
	assert.Empty(t, found.Notes)

	_, err = svc.GetByID(9999)
	assert.ErrorIs(t, err, ErrTenderRequestNotFound)
}

func TestTenderRequestList(t *testing.T) {
	db := newTestDB(t)
	svc := NewTenderRequestService(db, newTestConfig())

	first := newTenderRequest()
	require.NoError(t, svc.Create(first))

	second := newTenderRequest()
	second.CompanyName = "Beta Constructions"
	second.ProjectType = "residential"
	require.NoError(t, svc.Create(second))

	_, err := svc.UpdateStatus(second.ID, models.RequestStatusContacted)
	require.NoError(t, err)

	// 不过滤
	requests, total, err := svc.List(TenderRequestListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, requests, 2)

	// "all" 与空串等价
	_, total, err = svc.List(TenderRequestListQuery{Status: "all", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// 按状态过滤
	requests, total, err = svc.List(TenderRequestListQuery{Status: "contacted", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, requests, 1)
	assert.Equal(t, "Beta Constructions", requests[0].CompanyName)

	// 按项目类型过滤
	_, total, err = svc.List(TenderRequestListQuery{ProjectType: "residential", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// 分页
	requests, total, err = svc.List(TenderRequestListQuery{Page: 2, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, requests, 1)

	// 排序白名单外的列名回退到created_at
	_, _, err = svc.List(TenderRequestListQuery{SortBy: "evil; DROP TABLE", Page: 1, Limit: 10})
	require.NoError(t, err)

	// 升序排序
	requests, _, err = svc.List(TenderRequestListQuery{SortBy: "companyName", SortOrder: "asc", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "Acme Builders Pvt. Ltd.", requests[0].CompanyName)
}

func TestTenderRequestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewTenderRequestService(db, newTestConfig())

	req := newTenderRequest()
	require.NoError(t, svc.Create(req))

	updated, err := svc.UpdateStatus(req.ID, models.RequestStatusReviewed)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusReviewed, updated.Status)

	// 重复设置同一状态是幂等的
	updated, err = svc.UpdateStatus(req.ID, models.RequestStatusReviewed)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusReviewed, updated.Status)

	// 非法状态不写库
	_, err = svc.UpdateStatus(req.ID, models.RequestStatus("bogus"))
	assert.ErrorIs(t, err, ErrInvalidRequestStatus)

	found, err := svc.GetByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusReviewed, found.Status)

	// 不存在的请求
	_, err = svc.UpdateStatus(9999, models.RequestStatusReviewed)
	assert.ErrorIs(t, err, ErrTenderRequestNotFound)
}

func TestTenderRequestAddNote(t *testing.T) {
	db := newTestDB(t)
	svc := NewTenderRequestService(db, newTestConfig())

	req := newTenderRequest()
	require.NoError(t, svc.Create(req))

	updated, err := svc.AddNote(req.ID, "Called the client, waiting for revised budget", 1)
	require.NoError(t, err)
	require.Len(t, updated.Notes, 1)
	assert.Equal(t, "Called the client, waiting for revised budget", updated.Notes[0].Content)
	assert.Equal(t, uint(1), updated.Notes[0].CreatedBy)

	// 备注只增不改
	updated, err = svc.AddNote(req.ID, "Revised budget received", 1)
	require.NoError(t, err)
	require.Len(t, updated.Notes, 2)
	assert.Equal(t, "Called the client, waiting for revised budget", updated.Notes[0].Content)

	// 空内容在任何写入前被拒绝
	before, err := svc.GetByID(req.ID)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = svc.AddNote(req.ID, "   ", 1)
	assert.ErrorIs(t, err, ErrEmptyNoteContent)

	after, err := svc.GetByID(req.ID)
	require.NoError(t, err)
	assert.Len(t, after.Notes, 2)
	assert.Equal(t, before.UpdatedAt.Unix(), after.UpdatedAt.Unix())

	// 不存在的请求
	_, err = svc.AddNote(9999, "orphan note", 1)
	assert.ErrorIs(t, err, ErrTenderRequestNotFound)
}
