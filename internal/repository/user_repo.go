package repository

import (
	"context"
	"strings"
	"time"

	"saasquatch/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID                     int64      `gorm:"column:id;primaryKey"`
	Email                  string     `gorm:"column:email;uniqueIndex"`
	Username               string     `gorm:"column:username;uniqueIndex"`
	PasswordHash           string     `gorm:"column:password_hash"`
	LinkedinURL            *string    `gorm:"column:linkedin_url"`
	TargetIndustries       []string   `gorm:"column:target_industries;serializer:json"`
	MinEmployees           *int       `gorm:"column:min_employees"`
	MaxEmployees           *int       `gorm:"column:max_employees"`
	MinRevenue             *int64     `gorm:"column:min_revenue"`
	MaxRevenue             *int64     `gorm:"column:max_revenue"`
	BusinessTypePreference *string    `gorm:"column:business_type_preference"`
	RequireContactInfo     bool       `gorm:"column:require_contact_info;default:true"`
	EmailNotifications     bool       `gorm:"column:email_notifications"`
	LastLogin              *time.Time `gorm:"column:last_login"`
	CreatedAt              time.Time  `gorm:"column:created_at"`
	UpdatedAt              time.Time  `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:                     m.ID,
		Email:                  m.Email,
		Username:               m.Username,
		PasswordHash:           m.PasswordHash,
		LinkedinURL:            m.LinkedinURL,
		TargetIndustries:       m.TargetIndustries,
		MinEmployees:           m.MinEmployees,
		MaxEmployees:           m.MaxEmployees,
		MinRevenue:             m.MinRevenue,
		MaxRevenue:             m.MaxRevenue,
		BusinessTypePreference: m.BusinessTypePreference,
		RequireContactInfo:     m.RequireContactInfo,
		EmailNotifications:     m.EmailNotifications,
		LastLogin:              m.LastLogin,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:                     u.ID,
		Email:                  strings.TrimSpace(strings.ToLower(u.Email)),
		Username:               strings.TrimSpace(u.Username),
		PasswordHash:           u.PasswordHash,
		LinkedinURL:            u.LinkedinURL,
		TargetIndustries:       u.TargetIndustries,
		MinEmployees:           u.MinEmployees,
		MaxEmployees:           u.MaxEmployees,
		MinRevenue:             u.MinRevenue,
		MaxRevenue:             u.MaxRevenue,
		BusinessTypePreference: u.BusinessTypePreference,
		RequireContactInfo:     u.RequireContactInfo,
		EmailNotifications:     u.EmailNotifications,
		LastLogin:              u.LastLogin,
		CreatedAt:              u.CreatedAt,
		UpdatedAt:              u.UpdatedAt,
	}
}

// Migrate creates the users table when it does not exist yet.
func (r *UserRepository) Migrate() error {
	return r.db.AutoMigrate(&userModel{})
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

// ExistsByEmailOrUsername backs the duplicate check at registration.
func (r *UserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).
		Table("users").
		Where("LOWER(email) = ? OR username = ?", strings.ToLower(strings.TrimSpace(email)), strings.TrimSpace(username)).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", id).
		Update("last_login", at).Error
}
