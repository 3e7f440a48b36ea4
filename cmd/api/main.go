// cmd/api/main.go
package main

import (
	"context"
	"log"

	"fasttrack-logistics-api-server/config"
	"fasttrack-logistics-api-server/internal/api/routes"
	"fasttrack-logistics-api-server/internal/database"
	"fasttrack-logistics-api-server/internal/s3"
	"fasttrack-logistics-api-server/internal/socket"
	"fasttrack-logistics-api-server/internal/store"
	"fasttrack-logistics-api-server/internal/store/memory"
	"fasttrack-logistics-api-server/internal/store/mongodb"

	"github.com/joho/godotenv"
)

func main() {
	// .env chỉ dùng khi chạy local; production dựa vào biến môi trường thật.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// 1. Load configuration
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// 2. Kết nối MongoDB và tạo index. Không có URI thì chạy chế độ demo với
	// store trong bộ nhớ.
	var st *store.Store
	if cfg.Mongo.URI != "" {
		db, err := database.Connect(cfg.Mongo)
		if err != nil {
			log.Fatalf("Could not connect to MongoDB: %v", err)
		}
		if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
			log.Fatalf("Could not create indexes: %v", err)
		}
		st = mongodb.New(db)
	} else {
		log.Println("MONGO_URI not set, running with in-memory store (data is not persisted)")
		st = memory.New()
	}

	// 3. Seed tài khoản admin mặc định
	if err := database.SeedAdmin(context.Background(), st.Users); err != nil {
		log.Fatalf("Could not seed admin user: %v", err)
	}

	// 4. S3 uploader là tùy chọn: không cấu hình bucket thì xác nhận giao
	// hàng vẫn chạy, chỉ bỏ qua ảnh minh chứng.
	var s3Uploader *s3.Uploader
	if cfg.S3.Bucket != "" {
		s3Uploader, err = s3.NewUploader(cfg.S3)
		if err != nil {
			log.Fatalf("Could not create S3 uploader: %v", err)
		}
	} else {
		log.Println("S3 bucket not configured, proof photo upload disabled")
	}

	// 5. WebSocket hub cho thông báo thời gian thực
	wsHub := socket.NewHub()

	// 6. Truyền tất cả các thành phần cần thiết vào router
	router := routes.SetupRouter(cfg, st, s3Uploader, wsHub)

	// 7. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
