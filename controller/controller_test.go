package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/janschottesukhothai-wq/Sukhothai-bot/config"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/constant"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/controller"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/model"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/router"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/service/chat"
	"github.com/janschottesukhothai-wq/Sukhothai-bot/service/faq"
)

type fakeEngine struct {
	mu    sync.Mutex
	calls int
	reply string
	err   error
}

func (f *fakeEngine) Generate(_ context.Context, _ string, _ []model.ChatTurn, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.reply, f.err
}

func (f *fakeEngine) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeMailer struct {
	mu       sync.Mutex
	subjects []string
	err      error
	sent     chan struct{}
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan struct{}, 16)}
}

func (f *fakeMailer) Send(subject, _ string) error {
	f.mu.Lock()
	f.subjects = append(f.subjects, subject)
	err := f.err
	f.mu.Unlock()
	f.sent <- struct{}{}
	return err
}

func (f *fakeMailer) waitForMail(t *testing.T) {
	t.Helper()
	select {
	case <-f.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("no mail sent within deadline")
	}
}

func (f *fakeMailer) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subjects)
}

type fakePinger struct {
	reply string
	err   error
}

func (f *fakePinger) Ping(context.Context) (string, error) { return f.reply, f.err }
func (f *fakePinger) Model() string                        { return "gpt-5-mini" }

type ControllerTest struct {
	suite.Suite

	engine *fakeEngine
	mailer *fakeMailer
	pinger *fakePinger
	server *gin.Engine
}

func (c *ControllerTest) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AllowedOrigins: []string{"*"},
		OpenAIAPIKey:   "sk-test",
	}
	cfg.Chat.MaxTurns = 10
	cfg.Chat.MaxTurnChars = 1200

	c.engine = &fakeEngine{reply: "Gern, was möchtest du wissen?"}
	c.mailer = newFakeMailer()
	c.pinger = &fakePinger{reply: "gpt-5-mini"}

	svc := chat.NewService(cfg, faq.NewMatcher(), c.engine, nil, c.mailer)
	ctrl := controller.New(cfg, svc, c.mailer, c.pinger, "status-test")
	c.server = router.New(cfg, ctrl)
}

func (c *ControllerTest) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		c.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c.server.ServeHTTP(rec, req)
	return rec
}

func (c *ControllerTest) TestChatFAQShortCircuit() {
	rec := c.do(http.MethodPost, "/chat", model.ChatRequest{Message: "Habt ihr vegane Optionen?"})

	c.Equal(http.StatusOK, rec.Code)
	var res model.ChatResponse
	c.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	c.True(res.OK)
	c.Equal("Vegetarische, vegane und glutenfreie Optionen sind verfügbar. Hier ist die Karte: "+constant.MenuLink, res.Answer)
	c.Len(res.ThreadID, 8)
	c.Zero(c.engine.callCount())
	c.mailer.waitForMail(c.T())
}

func (c *ControllerTest) TestChatReachesEngine() {
	rec := c.do(http.MethodPost, "/chat", model.ChatRequest{
		Message: "Erzähl mir etwas über die Region",
		History: []model.ChatTurn{{Role: model.RoleUser, Content: "Hallo"}},
	})

	c.Equal(http.StatusOK, rec.Code)
	var res model.ChatResponse
	c.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	c.Equal("Gern, was möchtest du wissen?", res.Answer)
	c.Equal(1, c.engine.callCount())
	c.mailer.waitForMail(c.T())
}

func (c *ControllerTest) TestChatEmptyMessageRejected() {
	rec := c.do(http.MethodPost, "/chat", model.ChatRequest{Message: ""})

	c.Equal(http.StatusBadRequest, rec.Code)
	var res model.ErrorResponse
	c.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	c.False(res.OK)
	c.Equal(constant.ChatMissingMessage, res.Error)
	c.Zero(c.engine.callCount())
	c.Zero(c.mailer.sentCount())
}

func (c *ControllerTest) TestChatMalformedBodyRejected() {
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c.server.ServeHTTP(rec, req)

	c.Equal(http.StatusBadRequest, rec.Code)
	c.Zero(c.engine.callCount())
}

func (c *ControllerTest) TestChatMailerFailureInvisibleToCaller() {
	c.mailer.err = context.DeadlineExceeded

	rec := c.do(http.MethodPost, "/chat", model.ChatRequest{Message: "Erzähl mir etwas über die Region"})

	c.Equal(http.StatusOK, rec.Code)
	var res model.ChatResponse
	c.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	c.True(res.OK)
	c.mailer.waitForMail(c.T())
}

func (c *ControllerTest) TestReserveValid() {
	rec := c.do(http.MethodPost, "/reserve", model.ReserveRequest{
		Name:    "Anna Berg",
		Phone:   "+49 170 1234567",
		Persons: 4,
		Date:    "2026-09-12",
		Time:    "19:00",
	})

	c.Equal(http.StatusOK, rec.Code)
	var res model.ReserveResponse
	c.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	c.True(res.OK)
	c.Equal(constant.ReserveAccepted, res.Msg)
	c.mailer.waitForMail(c.T())
}

func (c *ControllerTest) TestReserveMissingPhone() {
	rec := c.do(http.MethodPost, "/reserve", model.ReserveRequest{
		Name:    "Anna Berg",
		Persons: 4,
		Date:    "2026-09-12",
		Time:    "19:00",
	})

	c.Equal(http.StatusBadRequest, rec.Code)
	var res model.ErrorResponse
	c.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	c.Equal(constant.ReserveMissingFields, res.Error)
	c.Zero(c.mailer.sentCount())
}

func (c *ControllerTest) TestReserveZeroPersons() {
	rec := c.do(http.MethodPost, "/reserve", model.ReserveRequest{
		Name:  "Anna Berg",
		Phone: "+49 170 1234567",
		Date:  "2026-09-12",
		Time:  "19:00",
	})

	c.Equal(http.StatusBadRequest, rec.Code)
	c.Zero(c.mailer.sentCount())
}

func (c *ControllerTest) TestHealthz() {
	rec := c.do(http.MethodGet, "/healthz", nil)

	c.Equal(http.StatusOK, rec.Code)
	var res model.HealthResponse
	c.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	c.True(res.OK)
	c.True(res.HasKey)
	c.True(res.FastMode)
	c.Equal([]string{"*"}, res.Origins)
	c.Equal("status-test", res.Version)
}

func (c *ControllerTest) TestStatus() {
	rec := c.do(http.MethodGet, "/status", nil)

	c.Equal(http.StatusOK, rec.Code)
	var res model.StatusResponse
	c.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	c.True(res.OK)
	c.Equal("gpt-5-mini", res.Model)
	c.Equal("gpt-5-mini", res.Reply)
}

func (c *ControllerTest) TestStatusProbeFailure() {
	c.pinger.err = context.DeadlineExceeded

	rec := c.do(http.MethodGet, "/status", nil)

	c.Equal(http.StatusInternalServerError, rec.Code)
	var res model.ErrorResponse
	c.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	c.False(res.OK)
	c.Equal(model.ErrorMessages[model.ErrorStatusProbe], res.Error)
}

func (c *ControllerTest) TestRoot() {
	rec := c.do(http.MethodGet, "/", nil)

	c.Equal(http.StatusOK, rec.Code)
	c.Equal("Sukhothai Assist: OK", rec.Body.String())
}

func TestController(t *testing.T) {
	suite.Run(t, new(ControllerTest))
}
