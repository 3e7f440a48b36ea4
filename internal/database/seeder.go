// internal/database/seeder.go
package database

import (
	"context"
	"log"

	"fasttrack-logistics-api-server/internal/auth"
	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"
)

// SeedAdmin tạo tài khoản quản trị mặc định nếu chưa có.
func SeedAdmin(ctx context.Context, users store.UserStore) error {
	adminEmail := "admin@fasttrack.local"

	// Kiểm tra xem admin đã tồn tại chưa
	if _, err := users.GetByEmail(ctx, adminEmail); err == nil {
		log.Println("Admin user already exists. Seeding skipped.")
		return nil
	} else if err != store.ErrNotFound {
		return err
	}

	log.Println("Admin user not found. Seeding...")
	hashedPassword, err := auth.HashPassword("adminpassword") // Đặt một password mặc định
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:    adminEmail,
		Name:     "Administrator",
		Password: hashedPassword,
		Role:     "admin",
		Status:   "active",
	}
	if _, err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Println("Admin user seeded successfully.")
	return nil
}
