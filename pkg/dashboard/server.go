package dashboard

import (
	"context"
	"net"
	"net/http"
	"time"

	"writing-dashboard/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Server 只提供一个预先渲染好的页面
type Server struct {
	cfg    *config.ServerConfig
	page   []byte
	etag   string
	engine *gin.Engine
}

func NewServer(cfg *config.ServerConfig, page []byte) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		cfg:    cfg,
		page:   page,
		etag:   `"` + uuid.NewString() + `"`,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), requestLogger())
	s.engine.GET("/", s.handleIndex)
	s.engine.HEAD("/", s.handleIndex)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Header("ETag", s.etag)
	if c.GetHeader("If-None-Match") == s.etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.page)
}

// Run 监听配置的地址，ctx 结束后优雅关闭
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return errors.Wrapf(err, "监听 %s 失败", s.cfg.Addr())
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.S().Infof("仪表盘已启动: http://%s/", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "HTTP 服务异常退出")
	case <-ctx.Done():
	}

	zap.S().Info("正在关闭仪表盘服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "关闭 HTTP 服务失败")
	}
	<-errCh
	return nil
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		zap.S().Debugf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
