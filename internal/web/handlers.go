package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/unanda-ft/faqbot/internal/buildinfo"
	"github.com/unanda-ft/faqbot/internal/config"
	"github.com/unanda-ft/faqbot/internal/ctxutil"
	apperrors "github.com/unanda-ft/faqbot/internal/errors"
)

// ChatRequest is the body of POST /api/chat. SessionID is optional for
// API clients; browser clients rely on the session cookie instead.
type ChatRequest struct {
	Text      string `json:"text"`
	SessionID string `json:"session_id,omitempty"`
}

// DebugInfo mirrors the diagnostic block the chat UI displays alongside
// each answer.
type DebugInfo struct {
	Category     string `json:"final_intent_category"`
	ProcessingMS int64  `json:"processing_time_ms"`
	SessionID    string `json:"session_id"`
}

// ChatResponse is the body of a successful POST /api/chat.
type ChatResponse struct {
	Answer string    `json:"answer"`
	Debug  DebugInfo `json:"debug_info"`
}

// sessionRequest is the optional body of forget-name and reset calls.
type sessionRequest struct {
	SessionID string `json:"session_id,omitempty"`
}

func (s *Server) handleChat(c *gin.Context) {
	start := time.Now()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request JSON diperlukan"})
		return
	}

	sid := s.resolveSession(c, req.SessionID)

	if !s.limiter.Allow(sid) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Terlalu banyak permintaan. Mohon tunggu sebentar sebelum mencoba lagi.",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), config.TurnProcessing)
	defer cancel()
	ctx = ctxutil.WithSessionID(ctx, sid)

	turn, err := s.manager.HandleTurn(ctx, sid, req.Text)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			message := "Input tidak valid."
			var ve *apperrors.ValidationError
			if errors.As(err, &ve) {
				message = ve.Message
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": message})
			return
		}
		s.logger.WithSessionID(sid).WithError(err).Error("Turn handling failed")
		s.metrics.RecordHTTPError("turn_failed", "/api/chat")
		c.JSON(http.StatusInternalServerError, gin.H{
			"answer": apperrors.GetUserMessage(err, "Maaf, terjadi kendala teknis di sistem saya. Silakan coba beberapa saat lagi."),
			"error":  "Internal Server Error",
		})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Answer: turn.Reply,
		Debug: DebugInfo{
			Category:     turn.Category,
			ProcessingMS: time.Since(start).Milliseconds(),
			SessionID:    sid,
		},
	})
}

func (s *Server) handleForgetName(c *gin.Context) {
	var req sessionRequest
	_ = c.ShouldBindJSON(&req)
	sid := s.resolveSession(c, req.SessionID)

	removed, err := s.manager.ForgetName(c.Request.Context(), sid)
	if err != nil {
		s.logger.WithSessionID(sid).WithError(err).Error("Forget name failed")
		s.metrics.RecordHTTPError("forget_name_failed", "/api/forget-name")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": apperrors.GetUserMessage(err, "Maaf, terjadi sedikit masalah saat mencoba melupakan nama Anda."),
		})
		return
	}

	if removed == "" {
		c.JSON(http.StatusOK, gin.H{
			"status":  "no_name",
			"message": "Tidak masalah, saya memang belum menyimpan nama Anda sebelumnya.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Baik %s, nama Anda sudah tidak saya simpan lagi. Kita mulai dari awal ya.", removed),
	})
}

func (s *Server) handleReset(c *gin.Context) {
	var req sessionRequest
	_ = c.ShouldBindJSON(&req)
	sid := s.resolveSession(c, req.SessionID)

	if err := s.manager.ResetSession(c.Request.Context(), sid); err != nil {
		s.logger.WithSessionID(sid).WithError(err).Error("Session reset failed")
		s.metrics.RecordHTTPError("reset_failed", "/api/reset")
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "faqbot",
		"version": buildinfo.Version,
		"status":  "ok",
	})
}

// handleHealthz is the liveness probe. It never checks dependencies.
func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleReady is the readiness probe: session store reachable plus the
// state of the NLU tier chain.
func (s *Server) handleReady(c *gin.Context) {
	count, err := s.store.Count(c.Request.Context())
	if err != nil {
		s.logger.WithError(err).Warn("Readiness check failed: session store unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "session store unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "ready",
		"sessions":       count,
		"uptime_seconds": int64(time.Since(s.startedAt).Seconds()),
		"features": gin.H{
			"nlu":      s.classifier.IsEnabled(),
			"provider": s.classifier.Provider().String(),
		},
	})
}

// resolveSession picks the session id from the request body, then the
// session cookie, and mints a fresh one otherwise. The cookie is
// refreshed on every request so active sessions outlive the TTL.
func (s *Server) resolveSession(c *gin.Context, bodyID string) string {
	sid := strings.TrimSpace(bodyID)
	if sid == "" || len(sid) > 64 {
		if cookie, err := c.Cookie(sessionCookie); err == nil && cookie != "" && len(cookie) <= 64 {
			sid = cookie
		} else {
			sid = uuid.NewString()
		}
	}
	maxAge := int(s.cfg.SessionTTL / time.Second)
	c.SetCookie(sessionCookie, sid, maxAge, "/", "", false, true)
	return sid
}
