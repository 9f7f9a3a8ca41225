package services

import (
	"testing"

	"dhiya-infra-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthenticateSuccess(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewUserService(db, cfg)

	user, err := svc.Authenticate(cfg.AdminEmail, cfg.AdminPassword)
	require.NoError(t, err)

	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin", user.Role)
	assert.Equal(t, cfg.AdminEmail, user.Email)
	assert.NotNil(t, user.LastLogin)

	// 存储的是bcrypt哈希，不是明文
	assert.NotEqual(t, cfg.AdminPassword, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(cfg.AdminPassword)))

	// 再次登录复用同一条记录
	again, err := svc.Authenticate(cfg.AdminEmail, cfg.AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthenticateUniformFailure(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewUserService(db, cfg)

	// 邮箱错和密码错返回同一个错误
	_, err := svc.Authenticate("wrong@example.com", cfg.AdminPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(cfg.AdminEmail, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// 登录失败不创建账户记录
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUpdateUser(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewUserService(db, cfg)

	user, err := svc.Authenticate(cfg.AdminEmail, cfg.AdminPassword)
	require.NoError(t, err)

	updated, err := svc.UpdateUser(user.ID, map[string]interface{}{
		"username": "superadmin",
		"password": "new-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "superadmin", updated.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("new-password")))

	_, err = svc.UpdateUser(9999, map[string]interface{}{"username": "ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserKeepsLastAdmin(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewUserService(db, cfg)

	admin, err := svc.Authenticate(cfg.AdminEmail, cfg.AdminPassword)
	require.NoError(t, err)

	// 最后一个管理员不能删除
	err = svc.DeleteUser(admin.ID)
	assert.ErrorIs(t, err, ErrLastAdmin)

	// 有第二个管理员时可以删除
	second := &models.User{
		Username: "admin2",
		Email:    "admin2@dhiyainfra.com",
		Password: "hashed",
		Role:     "admin",
		IsActive: true,
	}
	require.NoError(t, db.Create(second).Error)

	require.NoError(t, svc.DeleteUser(second.ID))

	_, err = svc.GetUserByID(second.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
