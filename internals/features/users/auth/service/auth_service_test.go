package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"masjidcare_backend/internals/apperr"
	"masjidcare_backend/internals/configs"
	"masjidcare_backend/internals/constants"
	database "masjidcare_backend/internals/databases"
	"masjidcare_backend/internals/features/users/auth/dto"
	authModel "masjidcare_backend/internals/features/users/auth/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.AutoMigrateAll(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func withTestSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = prev })
}

func registerUser(t *testing.T, db *gorm.DB, email, password string) {
	t.Helper()
	_, err := Register(db, dto.RegisterRequest{
		UserFullName: "Ali Hassan",
		UserEmail:    email,
		Password:     password,
	})
	require.NoError(t, err)
}

func TestRegister_CreatesMemberWithDerivedUsername(t *testing.T) {
	db := setupTestDB(t)

	user, err := Register(db, dto.RegisterRequest{
		UserFullName: "Ali Hassan",
		UserEmail:    "Ali@Example.com",
		Password:     "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "ali", user.UserName)
	assert.Equal(t, "ali@example.com", user.UserEmail)
	assert.Equal(t, constants.RoleMember, user.UserRole)
	assert.NotEqual(t, "s3cretpass", user.UserPassword)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	db := setupTestDB(t)
	registerUser(t, db, "ali@example.com", "s3cretpass")

	_, err := Register(db, dto.RegisterRequest{
		UserFullName: "Someone Else",
		UserEmail:    "ali@example.com",
		UserName:     "someoneelse",
		Password:     "anotherpass",
	})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestLogin_Success(t *testing.T) {
	db := setupTestDB(t)
	withTestSecret(t)
	registerUser(t, db, "ali@example.com", "s3cretpass")

	// by email
	res, err := Login(db, dto.LoginRequest{Identifier: "ali@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "ali", res.User.UserName)

	// by username
	res, err = Login(db, dto.LoginRequest{Identifier: "ALI", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
}

func TestLogin_UnknownUserAndWrongPasswordAreIndistinguishable(t *testing.T) {
	db := setupTestDB(t)
	withTestSecret(t)
	registerUser(t, db, "ali@example.com", "s3cretpass")

	_, errUnknown := Login(db, dto.LoginRequest{Identifier: "nobody@example.com", Password: "whatever1"})
	_, errWrongPw := Login(db, dto.LoginRequest{Identifier: "ali@example.com", Password: "wrongpass"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.True(t, apperr.Is(errUnknown, apperr.KindAuthentication))
	assert.True(t, apperr.Is(errWrongPw, apperr.KindAuthentication))
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestLogin_InactiveAccountForbidden(t *testing.T) {
	db := setupTestDB(t)
	withTestSecret(t)
	registerUser(t, db, "ali@example.com", "s3cretpass")

	require.NoError(t, db.Exec("UPDATE users SET user_is_active = ? WHERE user_email = ?", false, "ali@example.com").Error)

	_, err := Login(db, dto.LoginRequest{Identifier: "ali@example.com", Password: "s3cretpass"})
	assert.True(t, apperr.Is(err, apperr.KindAuthorization))
}

func TestLogin_TokenCarriesPrincipalClaims(t *testing.T) {
	db := setupTestDB(t)
	withTestSecret(t)

	areaID := uuid.New()
	user, err := Register(db, dto.RegisterRequest{
		UserFullName: "Ali Hassan",
		UserEmail:    "ali@example.com",
		Password:     "s3cretpass",
		UserAreaID:   &areaID,
	})
	require.NoError(t, err)

	res, err := Login(db, dto.LoginRequest{Identifier: "ali@example.com", Password: "s3cretpass"})
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, parseErr := jwt.ParseWithClaims(res.AccessToken, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, parseErr)
	assert.Equal(t, user.UserID.String(), claims["user_id"])
	assert.Equal(t, "ali", claims["user_name"])
	assert.Equal(t, constants.RoleMember, claims["role"])
	assert.Equal(t, areaID.String(), claims["area_id"])
	assert.NotNil(t, claims["exp"])
}

func TestLogout_BlacklistsToken(t *testing.T) {
	db := setupTestDB(t)
	withTestSecret(t)
	registerUser(t, db, "ali@example.com", "s3cretpass")

	res, err := Login(db, dto.LoginRequest{Identifier: "ali@example.com", Password: "s3cretpass"})
	require.NoError(t, err)

	require.NoError(t, Logout(db, res.AccessToken))

	var count int64
	require.NoError(t, db.Model(&authModel.TokenBlacklistModel{}).
		Where("token_blacklist_token = ?", res.AccessToken).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	withTestSecret(t)
	registerUser(t, db, "ali@example.com", "s3cretpass")

	res, err := Login(db, dto.LoginRequest{Identifier: "ali@example.com", Password: "s3cretpass"})
	require.NoError(t, err)

	err = ChangePassword(db, res.User.UserID, dto.ChangePasswordRequest{
		OldPassword: "not-the-old-one",
		NewPassword: "newpass123",
	})
	assert.True(t, apperr.Is(err, apperr.KindAuthentication))

	require.NoError(t, ChangePassword(db, res.User.UserID, dto.ChangePasswordRequest{
		OldPassword: "s3cretpass",
		NewPassword: "newpass123",
	}))

	_, err = Login(db, dto.LoginRequest{Identifier: "ali@example.com", Password: "s3cretpass"})
	require.Error(t, err)
	_, err = Login(db, dto.LoginRequest{Identifier: "ali@example.com", Password: "newpass123"})
	require.NoError(t, err)
}
