package core

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/nachtrunde/werwolf-server/logic"
	"github.com/nachtrunde/werwolf-server/model"
	"github.com/nachtrunde/werwolf-server/service"
	"github.com/nachtrunde/werwolf-server/util"
)

type Server struct {
	config     model.Config
	upgrader   websocket.Upgrader
	registry   *LobbyRegistry
	gameLogger *service.GameLogger
	signaled   bool
}

func NewServer(config model.Config) (*Server, error) {
	server := &Server{
		config: config,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		registry: NewLobbyRegistry(&config),
		signaled: false,
	}
	if config.GameLogger.Enable {
		server.gameLogger = service.NewGameLogger(config)
		server.registry.SetGameLogger(server.gameLogger)
	}
	return server, nil
}

func (s *Server) Run() {
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Header("Server", "werwolf-server/"+Version.Version+" "+runtime.Version()+" ("+runtime.GOOS+"; "+runtime.GOARCH+")")

		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Ngrok-Skip-Browser-Warning")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.GET("/ws", func(c *gin.Context) {
		s.handleConnections(c.Writer, c.Request)
	})

	go func() {
		trap := make(chan os.Signal, 1)
		signal.Notify(trap, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGINT)
		sig := <-trap
		slog.Info("シグナルを受信しました", "signal", sig)
		s.signaled = true
		s.gracefullyShutdown()
		os.Exit(0)
	}()

	slog.Info("サーバを起動しました", "host", s.config.Server.WebSocket.Host, "port", s.config.Server.WebSocket.Port)
	err := router.Run(s.config.Server.WebSocket.Host + ":" + strconv.Itoa(s.config.Server.WebSocket.Port))
	if err != nil {
		slog.Error("サーバの起動に失敗しました", "error", err)
		return
	}
}

func (s *Server) gracefullyShutdown() {
	for !s.registry.Empty() {
		time.Sleep(15 * time.Second)
	}
	slog.Info("全てのロビーが終了しました")
}

func (s *Server) handleConnections(w http.ResponseWriter, r *http.Request) {
	if s.signaled {
		slog.Warn("シグナルを受信したため、新しい接続を受け付けません")
		return
	}
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("クライアントのアップグレードに失敗しました", "error", err)
		return
	}
	if s.config.Server.Authentication.Enable {
		secret := s.config.Server.Authentication.Secret
		if secret == "" {
			secret = os.Getenv("SECRET_KEY")
		}
		token := r.URL.Query().Get("token")
		if token == "" {
			token = strings.ReplaceAll(r.Header.Get("Authorization"), "Bearer ", "")
		}
		if !util.IsValidPlayerToken(secret, token) {
			slog.Warn("トークンが無効です", "remote_addr", ws.RemoteAddr().String())
			ws.Close()
			return
		}
	}
	s.serveConnection(ws)
}

func (s *Server) serveConnection(ws *websocket.Conn) {
	var player *model.Player
	var lobby *logic.Lobby
	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			slog.Info("接続が閉じられました", "remote_addr", ws.RemoteAddr().String(), "error", err)
			break
		}
		var packet model.Packet
		if err := json.Unmarshal(raw, &packet); err != nil {
			slog.Warn("パケットのパースに失敗しました", "error", err)
			continue
		}
		switch packet.Type {
		case model.E_CREATE_LOBBY:
			if lobby != nil || packet.PlayerName == "" {
				continue
			}
			player = model.NewPlayer(packet.PlayerName, ws)
			created := s.registry.Create()
			if created.Join(player, true) {
				lobby = created
			} else {
				s.registry.Remove(created.Code)
				player = nil
			}
		case model.E_JOIN_LOBBY:
			if lobby != nil || packet.PlayerName == "" {
				continue
			}
			found := s.registry.Find(packet.LobbyID)
			if found == nil {
				s.writeError(ws, "Lobby existiert nicht")
				continue
			}
			player = model.NewPlayer(packet.PlayerName, ws)
			if found.Join(player, false) {
				lobby = found
			} else {
				player = nil
			}
		case model.E_PLAYER_READY:
			if lobby == nil || packet.Ready == nil {
				continue
			}
			lobby.SetReady(player, *packet.Ready)
		case model.E_START_GAME:
			if lobby == nil {
				continue
			}
			lobby.StartGame(player)
		default:
			if lobby == nil {
				continue
			}
			lobby.HandleAction(player, packet)
		}
	}
	if lobby != nil && player != nil {
		if empty := lobby.HandleDisconnect(player); empty {
			s.registry.Remove(lobby.Code)
		}
	} else {
		ws.Close()
	}
}

func (s *Server) writeError(ws *websocket.Conn, message string) {
	raw, err := json.Marshal(model.Event{Type: model.E_ERROR_MESSAGE, Data: message})
	if err != nil {
		return
	}
	if err := ws.WriteMessage(websocket.TextMessage, raw); err != nil {
		slog.Warn("エラーメッセージの送信に失敗しました", "error", err)
	}
}
