package api

import (
	"net/http" // HTTP status codes

	"kasir/internal/notify" // WhatsApp webhook client

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SendWARequest is the body of POST /api/send-wa
type SendWARequest struct {
	Number  string `json:"number"`
	Message string `json:"message"`
}

// SendWAHandler forwards a message to the WhatsApp webhook and passes its answer back
func SendWAHandler(notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendWARequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "msg": notify.ErrEmptyMessage.Error()})
			return
		}
		msg, err := notify.Validate(req.Number, req.Message)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "msg": err.Error()})
			return
		}
		if notifier == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "msg": "layanan WA belum dikonfigurasi"})
			return
		}

		reply, err := notifier.Send(c.Request.Context(), msg)
		if err != nil {
			logrus.WithFields(logrus.Fields{"number": msg.Number, "error": err.Error()}).Error("WhatsApp send failed")
			c.JSON(http.StatusBadGateway, gin.H{"status": "error", "msg": "gagal kirim WA: " + err.Error()})
			return
		}
		logrus.WithFields(logrus.Fields{"number": msg.Number, "status": reply.StatusCode}).Info("WhatsApp message forwarded")
		c.Data(reply.StatusCode, reply.ContentType, reply.Body)
	}
}
