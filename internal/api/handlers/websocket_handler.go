// internal/api/handlers/websocket_handler.go
package handlers

import (
	"log"
	"net/http"
	"time"

	"fasttrack-logistics-api-server/internal/auth"
	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/service"
	"fasttrack-logistics-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Thời gian chờ tối đa cho một tin nhắn từ client.
const pongWait = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	Hub       *socket.Hub
	JWTSecret []byte
}

// ServeWs xử lý các yêu cầu kết nối WebSocket. Token truyền qua query vì
// trình duyệt không gắn được header lên handshake WebSocket.
func (h *WebSocketHandler) ServeWs(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
		return
	}

	claims, err := auth.ParseJWT(h.JWTSecret, tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	// Personnel nhận thông báo theo key "Personnel:<id>" — trùng với key mà
	// NotificationService dùng khi push. User không gắn personnel thì theo
	// key tài khoản.
	key := service.RecipientKey("user", claims.UserID)
	if claims.PersonnelID != "" {
		key = service.RecipientKey(models.RecipientPersonnel, claims.PersonnelID)
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	h.Hub.Register(key, conn)

	defer func() {
		h.Hub.Unregister(key)
		conn.Close()
	}()

	// Đặt thời gian chờ tối đa; nhận được PING từ client thì reset deadline.
	// Thư viện gorilla/websocket sẽ tự động trả PONG.
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPingHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Vòng lặp đọc: giữ kết nối cho đến khi client đóng.
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Unexpected close error: %v", err)
			}
			break
		}
	}
}
