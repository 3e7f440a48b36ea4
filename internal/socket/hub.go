// internal/socket/hub.go
package socket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub quản lý các kết nối WebSocket đang mở, key là recipient key dạng
// "Personnel:<id>" hoặc "user:<id>".
type Hub struct {
	clients map[string]*websocket.Conn
	// mu bảo vệ map clients khi nhiều goroutine cùng truy cập.
	mu sync.RWMutex
}

// NewHub tạo một Hub mới.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
	}
}

// Register thêm một client mới vào Hub.
func (h *Hub) Register(key string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[key] = conn
	log.Printf("WebSocket client registered: %s", key)
}

// Unregister xóa một client khỏi Hub.
func (h *Hub) Unregister(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[key]; ok {
		delete(h.clients, key)
		log.Printf("WebSocket client unregistered: %s", key)
	}
}

// Send gửi một tin nhắn đến một client cụ thể. Client offline không phải là
// lỗi: thông báo đã được lưu trong store, client sẽ thấy khi tải lại.
func (h *Hub) Send(key string, message []byte) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conn, ok := h.clients[key]
	if !ok {
		return nil
	}
	return conn.WriteMessage(websocket.TextMessage, message)
}

// SendJSON marshal payload rồi gửi qua Send.
func (h *Hub) SendJSON(key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return h.Send(key, data)
}
