package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tanyaku_backend/internals/features/users/auth/dto"
	authService "tanyaku_backend/internals/features/users/auth/service"
	userDTO "tanyaku_backend/internals/features/users/user/dto"
	userModel "tanyaku_backend/internals/features/users/user/model"
	helper "tanyaku_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// ➕ POST /auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.UserName = strings.TrimSpace(req.UserName)
	req.UserEmail = strings.TrimSpace(strings.ToLower(req.UserEmail))

	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// cek username/email sudah terpakai
	var cnt int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_name = ? OR user_email = ?", req.UserName, req.UserEmail).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi user")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPassword: string(hashed),
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		log.Println("[ERROR] register:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", userDTO.ToUserDTO(user))
}

// 🔑 POST /auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.UserName = strings.TrimSpace(req.UserName)

	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user userModel.UserModel
	err := ctrl.DB.First(&user, "user_name = ?", req.UserName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := authService.IssueAccessToken(user.UserID)
	if err != nil {
		log.Println("[ERROR] issue token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		UserID:      user.UserID,
		UserName:    user.UserName,
	})
}
