package server

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/danmuck/eftp/internal/linecode"
	"github.com/danmuck/eftp/internal/medium"
	"github.com/danmuck/eftp/internal/observability"
	"github.com/danmuck/eftp/internal/protocol/frame"
	"github.com/danmuck/eftp/internal/protocol/session"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// payloadRequest carries either text or base64 data.
type payloadRequest struct {
	Text string `json:"text"`
	Data string `json:"data"`
}

func (p payloadRequest) bytes() ([]byte, error) {
	if p.Data != "" {
		return base64.StdEncoding.DecodeString(p.Data)
	}
	return []byte(p.Text), nil
}

type decodeRequest struct {
	Streams []string `json:"streams"`
}

type payloadResponse struct {
	Text   string `json:"text"`
	Data   string `json:"data"`
	Length int    `json:"length"`
}

func newPayloadResponse(b []byte) payloadResponse {
	return payloadResponse{
		Text:   string(b),
		Data:   base64.StdEncoding.EncodeToString(b),
		Length: len(b),
	}
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.Name,
			"version": "0.0.1",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")

	v1.POST("/encode", func(c *gin.Context) {
		data, ok := bindPayload(c)
		if !ok {
			return
		}
		streams := linecode.Encode(data)
		observability.RecordFrame("encode", "ok")
		c.JSON(http.StatusOK, gin.H{"streams": streams[:], "length": len(data)})
	})

	v1.POST("/decode", func(c *gin.Context) {
		var req decodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		streams, err := linecode.ParseStreams(req.Streams)
		if err != nil {
			respondCodecError(c, err)
			return
		}
		data, err := linecode.Decode(streams)
		if err != nil {
			observability.RecordFrame("decode", linecode.Kind(err))
			respondCodecError(c, err)
			return
		}
		observability.RecordFrame("decode", "ok")
		c.JSON(http.StatusOK, newPayloadResponse(data))
	})

	v1.POST("/transmit", func(c *gin.Context) {
		data, ok := bindPayload(c)
		if !ok {
			return
		}
		streams, err := s.session.TransmitBytes(data)
		if err != nil {
			respondSessionError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"streams": streams[:], "pending": s.line.Len()})
	})

	v1.POST("/receive", func(c *gin.Context) {
		data, err := s.session.ReceiveBytes()
		if errors.Is(err, medium.ErrNoData) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no data"})
			return
		}
		if err != nil {
			respondCodecError(c, err)
			return
		}
		c.JSON(http.StatusOK, newPayloadResponse(data))
	})

	v1.GET("/line", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pending": s.line.Len(), "has_data": s.line.HasData()})
	})

	v1.DELETE("/line", func(c *gin.Context) {
		dropped := s.line.Drain()
		s.logger.Info().Int("dropped", dropped).Msg("line reset")
		c.JSON(http.StatusOK, gin.H{"dropped": dropped, "pending": s.line.Len()})
	})

	v1.POST("/transmit-file/:name", func(c *gin.Context) {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, frame.MaxFileLen+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		report, err := s.session.Transmit(c.Param("name"), body)
		if err != nil {
			respondSessionError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, report)
	})

	v1.POST("/receive-file", func(c *gin.Context) {
		file, report, err := s.session.Receive()
		if err != nil {
			respondSessionError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"report":  report,
			"name":    file.Name,
			"content": base64.StdEncoding.EncodeToString(file.Content),
		})
	})
}

func bindPayload(c *gin.Context) ([]byte, bool) {
	var req payloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	data, err := req.bytes()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data is not valid base64"})
		return nil, false
	}
	return data, true
}

func respondCodecError(c *gin.Context, err error) {
	kind := linecode.Kind(err)
	c.Set(observability.CodecKindKey, kind)
	body := gin.H{"error": err.Error(), "kind": kind}
	var se *linecode.StreamError
	if errors.As(err, &se) {
		body["stream"] = se.Stream
	}
	c.JSON(http.StatusUnprocessableEntity, body)
}

func respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, medium.ErrNoData):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, frame.ErrFileName), errors.Is(err, frame.ErrFileLength), errors.Is(err, session.ErrFileTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrLineRejected):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case linecode.Kind(err) != "":
		respondCodecError(c, err)
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	}
}
