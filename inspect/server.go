package inspect

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/zeu5/sokoban-ql/qlearning"
	"github.com/zeu5/sokoban-ql/sokoban"
)

// Server exposes one game and its Q table over HTTP for manual play and
// inspection. The game and table are owned by one trainer, so every
// handler serializes through the mutex.
type Server struct {
	lock    sync.Mutex
	game    *sokoban.Game
	table   *qlearning.MapTable
	trainer *qlearning.Trainer
	router  *gin.Engine
}

func NewServer(game *sokoban.Game, table *qlearning.MapTable, trainer *qlearning.Trainer) *Server {
	s := &Server{
		game:    game,
		table:   table,
		trainer: trainer,
		router:  gin.Default(),
	}
	s.router.GET("/board", s.handleBoard)
	s.router.GET("/qrow", s.handleQRow)
	s.router.POST("/move", s.handleMove)
	s.router.POST("/restart", s.handleRestart)
	s.router.POST("/train", s.handleTrain)
	return s
}

// Run blocks serving on the given address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) boardResponse() gin.H {
	directions := make([]string, 0, 4)
	for _, d := range s.game.Directions().List() {
		directions = append(directions, d.String())
	}
	return gin.H{
		"board":      s.game.Render(),
		"time":       s.game.TimeElapsed(),
		"state":      s.game.EncodedState().Hex(),
		"succeeded":  s.game.Succeeded(),
		"failed":     s.game.Failed(),
		"finished":   s.game.Finished(),
		"directions": directions,
	}
}

func (s *Server) handleBoard(c *gin.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()
	c.JSON(http.StatusOK, s.boardResponse())
}

func (s *Server) handleQRow(c *gin.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()
	state := s.game.EncodedState()
	row := s.table.Row(state)
	c.JSON(http.StatusOK, gin.H{
		"state": state.Hex(),
		"up":    row[0],
		"left":  row[1],
		"right": row[2],
		"down":  row[3],
	})
}

type moveRequest struct {
	Direction string `json:"direction"`
}

func (s *Server) handleMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dir, ok := sokoban.ParseDirection(req.Direction)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown direction: " + req.Direction})
		return
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	pushed := s.game.Move(dir)
	resp := s.boardResponse()
	resp["pushed"] = pushed
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRestart(c *gin.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.game.Restart()
	c.JSON(http.StatusOK, s.boardResponse())
}

type trainRequest struct {
	Steps int `json:"steps"`
}

func (s *Server) handleTrain(c *gin.Context) {
	var req trainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Steps < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "steps must be positive"})
		return
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	var last qlearning.StepResult
	for i := 0; i < req.Steps; i++ {
		last = s.trainer.Step()
	}
	resp := s.boardResponse()
	resp["steps"] = req.Steps
	resp["states"] = s.table.Len()
	resp["last_action"] = last.Action.String()
	resp["last_reward"] = last.Reward
	c.JSON(http.StatusOK, resp)
}
