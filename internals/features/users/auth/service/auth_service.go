// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"masjidcare_backend/internals/apperr"
	"masjidcare_backend/internals/constants"
	authDTO "masjidcare_backend/internals/features/users/auth/dto"
	authModel "masjidcare_backend/internals/features/users/auth/model"
	userDTO "masjidcare_backend/internals/features/users/user/dto"
	userModel "masjidcare_backend/internals/features/users/user/model"
	userService "masjidcare_backend/internals/features/users/user/service"
)

// Login resolves the identifier as email or username and verifies the
// password. Unknown account and wrong password return the same message so
// the response does not leak which accounts exist.
func Login(db *gorm.DB, req authDTO.LoginRequest) (*authDTO.LoginResponse, error) {
	identifier := strings.ToLower(strings.TrimSpace(req.Identifier))

	var user userModel.UserModel
	err := db.Where("user_email = ? OR user_name = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Equalize timing against the bcrypt compare on the found path.
			_ = bcrypt.CompareHashAndPassword(
				[]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0C6uA5edCJVYglfIbSuXCJ6Ge/W"),
				[]byte(req.Password))
			return nil, apperr.Authentication("Invalid credentials")
		}
		return nil, apperr.From(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return nil, apperr.Authentication("Invalid credentials")
	}
	if !user.UserIsActive {
		return nil, apperr.Authorization("Your account has been deactivated")
	}

	token, _, err := IssueAccessToken(&user)
	if err != nil {
		return nil, apperr.Infra(err)
	}

	return &authDTO.LoginResponse{
		AccessToken: token,
		User: authDTO.LoginUser{
			UserID:       user.UserID,
			UserName:     user.UserName,
			UserEmail:    user.UserEmail,
			UserFullName: user.UserFullName,
			UserRole:     user.UserRole,
			UserAreaID:   user.UserAreaID,
		},
	}, nil
}

// Register is public self-registration. The account is always a member; the
// username falls back to the email local-part when not supplied.
func Register(db *gorm.DB, req authDTO.RegisterRequest) (*userModel.UserModel, error) {
	username := strings.TrimSpace(req.UserName)
	if username == "" {
		username = userService.DeriveUsername(req.UserEmail)
	}
	username, err := userService.EnsureUniqueUsername(db, strings.ToLower(username))
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Infra(err)
	}

	user := &userModel.UserModel{
		UserName:     username,
		UserEmail:    strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserFullName: strings.TrimSpace(req.UserFullName),
		UserPhone:    strings.TrimSpace(req.UserPhone),
		UserPassword: string(hash),
		UserRole:     constants.RoleMember,
		UserIsActive: true,
		UserAreaID:   req.UserAreaID,
	}
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("An account with this email or username already exists")
		}
		return nil, apperr.From(err)
	}
	return user, nil
}

// Logout blacklists the access token until its natural expiry. The cleanup
// scheduler removes rows once they are stale.
func Logout(db *gorm.DB, tokenString string) error {
	entry := &authModel.TokenBlacklistModel{
		TokenBlacklistToken:     tokenString,
		TokenBlacklistExpiresAt: TokenExpiry(tokenString),
	}
	if err := db.Create(entry).Error; err != nil {
		return apperr.From(err)
	}
	return nil
}

// Me returns the caller's own profile.
func Me(db *gorm.DB, userID uuid.UUID) (*userDTO.MemberResponse, error) {
	var user userModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, apperr.From(err)
	}
	return userDTO.NewMemberResponse(&user), nil
}

// ChangePassword verifies the old password before storing the new hash.
func ChangePassword(db *gorm.DB, userID uuid.UUID, req authDTO.ChangePasswordRequest) error {
	var user userModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return apperr.From(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.OldPassword)); err != nil {
		return apperr.Authentication("Old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Infra(err)
	}
	if err := db.Model(&user).Update("user_password", string(hash)).Error; err != nil {
		return apperr.From(err)
	}
	return nil
}
