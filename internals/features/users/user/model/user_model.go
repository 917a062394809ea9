package model

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName string    `gorm:"size:100;not null" json:"full_name" validate:"required,min=3,max=100"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`

	// Kode role numerik (150 admin, 160 bendahara, 170 staff, 200 siswa)
	Role int `gorm:"type:smallint;not null;default:200" json:"role"`

	SchoolID  *uuid.UUID `gorm:"type:uuid" json:"school_id,omitempty"`
	CompanyID *uuid.UUID `gorm:"type:uuid" json:"company_id,omitempty"`
	Logo      *string    `gorm:"type:text" json:"logo,omitempty"`

	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (u *UserModel) SetDefaultValues() {
	if u.Role == 0 {
		u.Role = constants.RoleSiswa
	}
}

// Validate menjalankan validasi struct
func (u *UserModel) Validate() error {
	return validate.Struct(u)
}

// RoleName nama role untuk response
func (u *UserModel) RoleName() string {
	return constants.RoleName(u.Role)
}

// ToUserData membangun payload userData (cookie + response auth)
func (u *UserModel) ToUserData() helperAuth.UserData {
	return helperAuth.UserData{
		ID:        u.ID,
		FullName:  u.FullName,
		Role:      u.Role,
		RoleName:  u.RoleName(),
		SchoolID:  u.SchoolID,
		CompanyID: u.CompanyID,
		Logo:      u.Logo,
	}
}
