// Package fakeapi is an in-memory marketplace API for tests.
// It enforces the same lifecycle rules as the real server so clients can be
// exercised end to end without a network dependency.
package fakeapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// Stage token modes understood by the PATCH /commission/{stage}/{id} route.
const (
	StageTokenTarget  = "target"
	StageTokenCurrent = "current"
)

var signingKey = []byte("fakeapi")

// Account is a registered user.
type Account struct {
	ID       int
	Email    string
	Password string
	Username string
	Role     string // "Buyer" or "Seller"
	City     string
	Bio      string
	Rating   float64
	token    string
}

// CommissionType is an offering in a seller's catalog.
type CommissionType struct {
	ID       int
	SellerID int
	Title    string
	Price    decimal.Decimal
}

// Commission is a stored commission.
type Commission struct {
	ID          int
	BuyerID     int
	SellerID    int
	Title       string
	Price       decimal.Decimal
	Description string
	Stage       string
	Rating      *int
}

// RecordedRequest captures the headers of one call.
type RecordedRequest struct {
	Method        string
	Path          string
	RequestID     string
	Authorization string
}

type injectedFailure struct {
	status  int
	message string
}

// Server is the fake API. The zero value is not usable; use New.
type Server struct {
	mu          sync.Mutex
	stageToken  string
	accounts    []*Account
	types       []*CommissionType
	commissions []*Commission
	nextID      int
	requests    []RecordedRequest
	failNext    *injectedFailure
}

// New creates an empty server. stageToken selects how the stage route is read.
func New(stageToken string) *Server {
	if stageToken == "" {
		stageToken = StageTokenTarget
	}
	return &Server{stageToken: stageToken, nextID: 1}
}

func (s *Server) id() int {
	id := s.nextID
	s.nextID++
	return id
}

// AddAccount registers a user and returns its id.
func (s *Server) AddAccount(a Account) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.id()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": a.ID,
		"email":   a.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := tok.SignedString(signingKey)
	if err != nil {
		panic(fmt.Sprintf("fakeapi: sign token: %v", err))
	}
	a.token = signed
	s.accounts = append(s.accounts, &a)
	return a.ID
}

// AddCommissionType adds an offering to a seller's catalog and returns its id.
func (s *Server) AddCommissionType(sellerID int, title, price string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	ct := &CommissionType{ID: s.id(), SellerID: sellerID, Title: title, Price: decimal.RequireFromString(price)}
	s.types = append(s.types, ct)
	return ct.ID
}

// TokenFor returns the bearer token issued to the account with the given email.
func (s *Server) TokenFor(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Email == email {
			return a.token
		}
	}
	return ""
}

// Commission returns a copy of the stored commission, or nil.
func (s *Server) Commission(id int) *Commission {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.commissions {
		if c.ID == id {
			cp := *c
			return &cp
		}
	}
	return nil
}

// Requests returns every call received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// CountRequests returns how many calls matched method and path.
func (s *Server) CountRequests(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// FailNext makes the next call answer with status and {"error": message}.
// An empty message answers with no body.
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = &injectedFailure{status: status, message: message}
}

// Handler returns the gin engine serving the API.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(s.record())

	r.POST("/login", s.login)
	r.GET("/artists/*username", s.artists)
	r.GET("/commission_types/:username", s.listTypes)
	r.PATCH("/commission_types/my_commissions/:id", s.auth, s.updateType)
	r.DELETE("/commission_types/my_commissions/:id", s.auth, s.deleteType)
	r.POST("/commission/create", s.auth, s.createCommission)
	r.GET("/commission/:role", s.auth, s.listCommissions)
	r.PATCH("/commission/:stage/:id", s.auth, s.patchCommission)
	return r
}

func (s *Server) record() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:        c.Request.Method,
			Path:          c.Request.URL.Path,
			RequestID:     c.GetHeader("X-Request-ID"),
			Authorization: c.GetHeader("Authorization"),
		})
		fail := s.failNext
		s.failNext = nil
		s.mu.Unlock()

		if fail != nil {
			if fail.message == "" {
				c.AbortWithStatus(fail.status)
				return
			}
			c.AbortWithStatusJSON(fail.status, gin.H{"error": fail.message})
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// auth resolves the bearer token to an account.
func (s *Server) auth(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	var found *Account
	s.mu.Lock()
	for _, a := range s.accounts {
		if token != "" && a.token == token {
			found = a
		}
	}
	s.mu.Unlock()

	if found == nil {
		abort(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	c.Set("account", found)
	c.Next()
}

func current(c *gin.Context) *Account {
	return c.MustGet("account").(*Account)
}

func (s *Server) accountByID(id int) *Account {
	for _, a := range s.accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *Server) accountByUsername(username string) *Account {
	for _, a := range s.accounts {
		if a.Username == username {
			return a
		}
	}
	return nil
}

func (s *Server) login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abort(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Email == body.Email && a.Password == body.Password {
			c.JSON(http.StatusOK, gin.H{"token": a.token, "user_type": a.Role})
			return
		}
	}
	abort(c, http.StatusUnauthorized, "Invalid email or password")
}

func (s *Server) artists(c *gin.Context) {
	username := strings.Trim(c.Param("username"), "/")
	s.mu.Lock()
	defer s.mu.Unlock()

	if username == "" {
		out := []gin.H{}
		for _, a := range s.accounts {
			if a.Role == "Seller" {
				out = append(out, gin.H{"username": a.Username, "city": a.City, "avatar_url": nil, "rating": a.Rating})
			}
		}
		c.JSON(http.StatusOK, out)
		return
	}

	a := s.accountByUsername(username)
	if a == nil || a.Role != "Seller" {
		abort(c, http.StatusNotFound, "Artist not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username":   a.Username,
		"bio":        a.Bio,
		"rating":     a.Rating,
		"avatar_url": nil,
		"cover_url":  nil,
	})
}

func typeJSON(ct *CommissionType) gin.H {
	return gin.H{"id": ct.ID, "title": ct.Title, "price": ct.Price.StringFixed(2), "seller_id": ct.SellerID}
}

func (s *Server) listTypes(c *gin.Context) {
	username := c.Param("username")
	if username == "my_commissions" {
		s.auth(c)
		if c.IsAborted() {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		c.JSON(http.StatusOK, s.typesOf(current(c).ID))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.accountByUsername(username)
	if a == nil || a.Role != "Seller" {
		abort(c, http.StatusNotFound, "Artist not found")
		return
	}
	c.JSON(http.StatusOK, s.typesOf(a.ID))
}

func (s *Server) typesOf(sellerID int) []gin.H {
	out := []gin.H{}
	for _, ct := range s.types {
		if ct.SellerID == sellerID {
			out = append(out, typeJSON(ct))
		}
	}
	return out
}

func (s *Server) ownType(c *gin.Context) *CommissionType {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abort(c, http.StatusBadRequest, "Invalid commission type id")
		return nil
	}
	for _, ct := range s.types {
		if ct.ID == id && ct.SellerID == current(c).ID {
			return ct
		}
	}
	abort(c, http.StatusNotFound, "Commission type not found")
	return nil
}

func (s *Server) updateType(c *gin.Context) {
	var body struct {
		CommissionType struct {
			Title string          `json:"title"`
			Price decimal.Decimal `json:"price"`
		} `json:"commission_type"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abort(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ct := s.ownType(c)
	if ct == nil {
		return
	}
	ct.Title = body.CommissionType.Title
	ct.Price = body.CommissionType.Price
	c.JSON(http.StatusOK, typeJSON(ct))
}

func (s *Server) deleteType(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ct := s.ownType(c)
	if ct == nil {
		return
	}
	for i, t := range s.types {
		if t == ct {
			s.types = append(s.types[:i], s.types[i+1:]...)
			break
		}
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) commissionJSON(cm *Commission, idKey string) gin.H {
	out := gin.H{
		idKey:         cm.ID,
		"buyer_id":    cm.BuyerID,
		"seller_id":   cm.SellerID,
		"title":       cm.Title,
		"price":       cm.Price.StringFixed(2),
		"description": cm.Description,
		"stage":       cm.Stage,
		"rating":      cm.Rating,
	}
	if b := s.accountByID(cm.BuyerID); b != nil {
		out["buyer_username"] = b.Username
	}
	if sl := s.accountByID(cm.SellerID); sl != nil {
		out["seller_username"] = sl.Username
	}
	return out
}

func (s *Server) createCommission(c *gin.Context) {
	var body struct {
		CommissionTypeID int    `json:"commission_type_id"`
		Description      string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abort(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	buyer := current(c)
	if buyer.Role != "Buyer" {
		abort(c, http.StatusForbidden, "Only buyers can request commissions")
		return
	}
	var ct *CommissionType
	for _, t := range s.types {
		if t.ID == body.CommissionTypeID {
			ct = t
		}
	}
	if ct == nil {
		abort(c, http.StatusNotFound, "Commission type not found")
		return
	}
	cm := &Commission{
		ID:          s.id(),
		BuyerID:     buyer.ID,
		SellerID:    ct.SellerID,
		Title:       ct.Title,
		Price:       ct.Price,
		Description: body.Description,
		Stage:       "Pending",
	}
	s.commissions = append(s.commissions, cm)
	c.JSON(http.StatusCreated, s.commissionJSON(cm, "id"))
}

func (s *Server) listCommissions(c *gin.Context) {
	role := c.Param("role")
	s.mu.Lock()
	defer s.mu.Unlock()
	me := current(c)
	if !strings.EqualFold(role, me.Role) {
		abort(c, http.StatusForbidden, "Forbidden")
		return
	}
	out := []gin.H{}
	for _, cm := range s.commissions {
		if (role == "buyer" && cm.BuyerID == me.ID) || (role == "seller" && cm.SellerID == me.ID) {
			out = append(out, s.commissionJSON(cm, "commission_id"))
		}
	}
	c.JSON(http.StatusOK, gin.H{"commissions": out})
}

var transitions = map[string]struct {
	from, to, actor string
}{
	"InProgress": {"Pending", "InProgress", "Seller"},
	"Completed":  {"InProgress", "Completed", "Buyer"},
}

func (s *Server) patchCommission(c *gin.Context) {
	segment := c.Param("stage")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abort(c, http.StatusBadRequest, "Invalid commission id")
		return
	}

	var body struct {
		Rating int `json:"rating"`
	}
	if segment == "rate" {
		if err := c.ShouldBindJSON(&body); err != nil {
			abort(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	me := current(c)
	var cm *Commission
	for _, x := range s.commissions {
		if x.ID == id && (x.BuyerID == me.ID || x.SellerID == me.ID) {
			cm = x
		}
	}
	if cm == nil {
		abort(c, http.StatusNotFound, "Commission not found")
		return
	}

	if segment == "rate" {
		switch {
		case me.ID != cm.BuyerID:
			abort(c, http.StatusForbidden, "Only the buyer can rate")
		case cm.Stage != "Completed":
			abort(c, http.StatusUnprocessableEntity, "Commission is not completed")
		case cm.Rating != nil:
			abort(c, http.StatusUnprocessableEntity, "Commission already rated")
		case body.Rating < 1 || body.Rating > 5:
			abort(c, http.StatusUnprocessableEntity, "Rating must be between 1 and 5")
		default:
			r := body.Rating
			cm.Rating = &r
			c.JSON(http.StatusOK, s.commissionJSON(cm, "id"))
		}
		return
	}

	target := segment
	if s.stageToken == StageTokenCurrent {
		target = ""
		for to, tr := range transitions {
			if tr.from == segment {
				target = to
			}
		}
	}
	tr, ok := transitions[target]
	if !ok || cm.Stage != tr.from {
		abort(c, http.StatusUnprocessableEntity, "Invalid stage transition")
		return
	}
	if me.Role != tr.actor {
		abort(c, http.StatusForbidden, "Not allowed to change this commission")
		return
	}
	cm.Stage = tr.to
	c.JSON(http.StatusOK, s.commissionJSON(cm, "id"))
}
