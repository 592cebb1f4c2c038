package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protrain-backend-go/internal/app"
	"protrain-backend-go/internal/config"
	"protrain-backend-go/internal/models"
	"protrain-backend-go/internal/seed"
	"protrain-backend-go/internal/services"
	"protrain-backend-go/internal/session"
	"protrain-backend-go/internal/views"
)

const (
	trainerJSON = `{"id":"t1","name":"Coach","email":"coach@cmmc.pt","photoUrl":"coach.jpg","role":"trainer"}`
	studentJSON = `{"id":"1","name":"João Silva","email":"joao@cmmc.pt","photoUrl":"joao.jpg","role":"student"}`
)

type testEnv struct {
	app    *app.App
	store  *session.MemoryStore
	hub    *StateHub
	router http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := session.NewMemoryStore()
	club, err := app.New(context.Background(), store, services.New(), seed.Collections(time.Now()))
	require.NoError(t, err)
	hub := NewStateHub(time.Second)
	club.Subscribe(hub.Listen)
	srv := NewServer(club, config.Config{}, hub)
	return &testEnv{app: club, store: store, hub: hub, router: srv.Router()}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) StateResponse {
	t.Helper()
	var state StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	return state
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Message
}

func TestLoggedOutState(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeState(t, rec)
	assert.Equal(t, views.LoggedOut, state.View)
	assert.Nil(t, state.User)
	assert.Empty(t, state.Students)
	assert.Empty(t, state.Posts)
}

func TestLoginAndNavigate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/session/login", trainerJSON)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	assert.Equal(t, views.Info, state.View)
	require.NotNil(t, state.User)
	assert.Equal(t, "t1", state.User.ID)
	assert.Len(t, state.Students, 3)

	saved, err := env.store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Coach", saved.Name)

	rec = env.do(t, http.MethodPost, "/api/nav/team", "")
	require.Equal(t, http.StatusOK, rec.Code)
	state = decodeState(t, rec)
	assert.Equal(t, views.List, state.View)
	for _, st := range state.Team {
		assert.Equal(t, models.LocationAlcanena, st.Location)
	}

	rec = env.do(t, http.MethodPost, "/api/students/2/select", "")
	require.Equal(t, http.StatusOK, rec.Code)
	state = decodeState(t, rec)
	assert.Equal(t, views.Detail, state.View)
	require.NotNil(t, state.SelectedStudent)
	assert.Equal(t, "2", state.SelectedStudent.ID)

	rec = env.do(t, http.MethodPost, "/api/nav/back", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, views.List, decodeState(t, rec).View)

	rec = env.do(t, http.MethodGet, "/api/session/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var sess SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	require.NotNil(t, sess.User)
	assert.Equal(t, models.RoleTrainer, sess.User.Role)
}

func TestLoginRejectsBadPayload(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/session/login", "{")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid payload", decodeMessage(t, rec))

	rec = env.do(t, http.MethodPost, "/api/session/login", `{"id":"x","role":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, env.app.Snapshot().User)
}

func TestStudentIsForbiddenFromModeration(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/session/login", studentJSON)

	rec := env.do(t, http.MethodPost, "/api/nav/moderation", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, views.Info, env.app.Snapshot().View.Current)

	rec = env.do(t, http.MethodPost, "/api/posts/p1/approve", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestNoSessionIsUnauthorized(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/posts/", `{"content":"hi"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUnknownNavItem(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/session/login", trainerJSON)
	rec := env.do(t, http.MethodPost, "/api/nav/settings", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Unknown navigation item", decodeMessage(t, rec))
	assert.Equal(t, views.Info, env.app.Snapshot().View.Current)
}

func TestSecondLoginStartsWithClosedForm(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/session/login", trainerJSON)
	env.do(t, http.MethodPost, "/api/students/form/toggle", "")
	env.do(t, http.MethodPut, "/api/students/form/draft", `{"name":"Ana","age":"30"}`)

	rec := env.do(t, http.MethodPost, "/api/session/login", `{"id":"t2","name":"Outro","role":"trainer"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	assert.False(t, state.ShowAddStudentForm)
	assert.Equal(t, views.Draft{}, state.Draft)
}

func TestStudentNavigatesToOwnProfile(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/session/login", studentJSON)

	rec := env.do(t, http.MethodPost, "/api/nav/TEAM", "")
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	assert.Equal(t, views.Detail, state.View)
	require.NotNil(t, state.CurrentStudent)
	assert.Equal(t, "1", state.CurrentStudent.ID)
	assert.Empty(t, state.Team)
}

func TestAttendanceDateValidation(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/session/login", trainerJSON)

	rec := env.do(t, http.MethodPost, "/api/students/1/attendance/14-03-2026", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/students/1/attendance/2026-03-14", "")
	require.Equal(t, http.StatusOK, rec.Code)
	st, ok := services.FindStudent(env.app.Snapshot().Collections, "1")
	require.True(t, ok)
	assert.True(t, st.HasAttended("2026-03-14"))
}

func TestPhotoEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/session/login", studentJSON)

	rec := env.do(t, http.MethodPost, "/api/students/1/photo", `{"url":"  "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "joao.jpg", decodeState(t, rec).User.PhotoURL)

	rec = env.do(t, http.MethodPost, "/api/students/1/photo", `{"url":"https://img.test/j.jpg"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	assert.Equal(t, "https://img.test/j.jpg", state.User.PhotoURL)
	assert.Equal(t, "https://img.test/j.jpg", state.CurrentStudent.PhotoURL)

	rec = env.do(t, http.MethodPost, "/api/students/2/photo", `{"url":"x.jpg"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTrainingLogEndpoints(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/session/login", trainerJSON)

	rec := env.do(t, http.MethodPost, "/api/students/3/logs", `{"date":"2026-03-01","exercise":"Salto","result":"1.20m"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var added TrainingLogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	require.NotEmpty(t, added.Log.ID)
	assert.Equal(t, "Salto", added.Log.Exercise)

	rec = env.do(t, http.MethodPut, "/api/students/3/logs/"+added.Log.ID, `{"date":"2026-03-01","exercise":"Salto","result":"1.25m"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	st, _ := services.FindStudent(env.app.Snapshot().Collections, "3")
	assert.Equal(t, "1.25m", st.Evolution[len(st.Evolution)-1].Result)

	rec = env.do(t, http.MethodDelete, "/api/students/3/logs/"+added.Log.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	st, _ = services.FindStudent(env.app.Snapshot().Collections, "3")
	for _, l := range st.Evolution {
		assert.NotEqual(t, added.Log.ID, l.ID)
	}
}

func TestAddStudentForm(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/session/login", trainerJSON)

	rec := env.do(t, http.MethodPut, "/api/location/Lisboa", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/location/Minde", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodPost, "/api/students/form/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeState(t, rec).ShowAddStudentForm)

	rec = env.do(t, http.MethodPut, "/api/students/form/draft", `{"name":"Ana","age":"30"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ana", decodeState(t, rec).Draft.Name)

	rec = env.do(t, http.MethodPost, "/api/students/form/submit", "")
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	assert.False(t, state.ShowAddStudentForm)
	assert.Len(t, state.Students, 4)

	var names []string
	for _, st := range state.Team {
		names = append(names, st.Name)
	}
	assert.Contains(t, names, "Ana")
}

func TestFeedEndpoints(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/session/login", studentJSON)

	rec := env.do(t, http.MethodPost, "/api/posts/", `{"content":"Treino feito"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	require.Len(t, state.Posts, 2)
	postID := state.Posts[0].ID

	rec = env.do(t, http.MethodPost, "/api/posts/"+postID+"/like", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"1"}, decodeState(t, rec).Posts[0].Likes)

	rec = env.do(t, http.MethodPost, "/api/posts/"+postID+"/comments", `{"text":"Boa"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeState(t, rec).Posts[0].Comments, 1)

	env.do(t, http.MethodPost, "/api/session/logout", "")
	env.do(t, http.MethodPost, "/api/session/login", trainerJSON)
	rec = env.do(t, http.MethodDelete, "/api/posts/"+postID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeState(t, rec).Posts, 1)
}

func TestContactMessagesVisibleToTrainersOnly(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/session/login", studentJSON)

	rec := env.do(t, http.MethodPost, "/api/messages/", `{"name":"João","message":"Olá"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "contactMessages")
	state := decodeState(t, rec)
	assert.Empty(t, state.ContactMessages)
	assert.Zero(t, state.PendingCount)

	env.do(t, http.MethodPost, "/api/session/logout", "")
	rec = env.do(t, http.MethodPost, "/api/session/login", trainerJSON)
	state = decodeState(t, rec)
	require.Len(t, state.ContactMessages, 1)
	assert.Equal(t, 1, state.PendingCount)

	rec = env.do(t, http.MethodDelete, "/api/messages/"+state.ContactMessages[0].ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeState(t, rec).ContactMessages)
}

func TestAddNoticeEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/session/login", trainerJSON)

	rec := env.do(t, http.MethodPost, "/api/notices", `{"title":"Estágio","content":"Maio","priority":"high"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	require.Len(t, state.Notices, 2)
	assert.Equal(t, "Estágio", state.Notices[0].Title)
	assert.Equal(t, models.PriorityNormal, state.Notices[0].Priority)
}

func TestLogoutClearsSession(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/session/login", trainerJSON)

	rec := env.do(t, http.MethodPost, "/api/session/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeState(t, rec)
	assert.Equal(t, views.LoggedOut, state.View)
	assert.Nil(t, state.User)

	saved, err := env.store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, saved)
}

type brokenStore struct {
	session.MemoryStore
}

func (b *brokenStore) Save(context.Context, models.User) error {
	return assert.AnError
}

func TestSessionWriteFailureIsServerError(t *testing.T) {
	club, err := app.New(context.Background(), &brokenStore{}, services.New(), seed.Collections(time.Now()))
	require.NoError(t, err)
	router := NewServer(club, config.Config{}, NewStateHub(time.Second)).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/session/login", strings.NewReader(trainerJSON))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Session storage failed", decodeMessage(t, rec))
	assert.NotNil(t, club.Snapshot().User)
}

func TestCORSPreflight(t *testing.T) {
	store := session.NewMemoryStore()
	club, err := app.New(context.Background(), store, services.New(), seed.Collections(time.Now()))
	require.NoError(t, err)
	cfg := config.Config{CorsOrigins: []string{"http://localhost:5173"}}
	router := NewServer(club, cfg, NewStateHub(time.Second)).Router()

	req := httptest.NewRequest(http.MethodOptions, "/api/state", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/session/login", trainerJSON)

	rec := env.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "protrain_intents_total")
}

func TestStateSocketStreamsCommits(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go env.hub.Run(ctx)

	ts := httptest.NewServer(env.router)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/state"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var first StateResponse
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, views.LoggedOut, first.View)

	require.Eventually(t, func() bool { return env.hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	_, err = env.app.Login(context.Background(), models.User{ID: "t1", Name: "Coach", Role: models.RoleTrainer})
	require.NoError(t, err)

	var next StateResponse
	require.NoError(t, conn.ReadJSON(&next))
	assert.Equal(t, views.Info, next.View)
	require.NotNil(t, next.User)
	assert.Equal(t, "t1", next.User.ID)
}

func TestBroadcastKeepsLatestSnapshot(t *testing.T) {
	hub := NewStateHub(time.Second)
	hub.Broadcast(StateResponse{View: views.Info})
	hub.Broadcast(StateResponse{View: views.Feed})
	hub.Broadcast(StateResponse{View: views.About})

	latest, version := hub.Latest()
	assert.Equal(t, views.About, latest.View)
	assert.Equal(t, uint64(3), version)
	assert.Len(t, hub.signal, 1)
	assert.Zero(t, hub.Count())
}

func dialState(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/state"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// readFrames collects frames until the socket stays silent for window.
func readFrames(t *testing.T, conn *websocket.Conn, window time.Duration) []views.View {
	t.Helper()
	var seen []views.View
	for {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(window)))
		var frame StateResponse
		if err := conn.ReadJSON(&frame); err != nil {
			break
		}
		seen = append(seen, frame.View)
	}
	require.NotEmpty(t, seen)
	return seen
}

func TestBurstOfCommitsEndsOnLatestState(t *testing.T) {
	env := newTestEnv(t)
	ts := httptest.NewServer(env.router)
	defer ts.Close()

	conn := dialState(t, ts)
	require.Eventually(t, func() bool { return env.hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	_, err := env.app.Login(context.Background(), models.User{ID: "t1", Name: "Coach", Role: models.RoleTrainer})
	require.NoError(t, err)
	_, err = env.app.Navigate(views.NavFeed)
	require.NoError(t, err)
	_, err = env.app.Navigate(views.NavAbout)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go env.hub.Run(ctx)

	seen := readFrames(t, conn, 300*time.Millisecond)
	assert.Equal(t, views.About, seen[len(seen)-1])
	assert.Equal(t, env.app.Snapshot().View.Current, seen[len(seen)-1])
}

func TestNewClientNeverMovesBackwards(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.app.Login(context.Background(), models.User{ID: "t1", Name: "Coach", Role: models.RoleTrainer})
	require.NoError(t, err)
	_, err = env.app.Navigate(views.NavFeed)
	require.NoError(t, err)

	ts := httptest.NewServer(env.router)
	defer ts.Close()
	conn := dialState(t, ts)
	require.Eventually(t, func() bool { return env.hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go env.hub.Run(ctx)

	seen := readFrames(t, conn, 300*time.Millisecond)
	for _, v := range seen {
		assert.Equal(t, views.Feed, v)
	}
}

func TestFailedWriteDropsClient(t *testing.T) {
	hub := NewStateHub(time.Second)
	serverConns := make(chan *websocket.Conn, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		if err := hub.Add(conn, func() StateResponse { return StateResponse{View: views.LoggedOut} }); err != nil {
			_ = conn.Close()
			return
		}
		serverConns <- conn
	}))
	defer ts.Close()

	client := dialState(t, ts)
	var first StateResponse
	require.NoError(t, client.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, client.ReadJSON(&first))

	server := <-serverConns
	require.Equal(t, 1, hub.Count())
	require.NoError(t, server.Close())

	hub.Broadcast(StateResponse{View: views.Info})
	hub.flush()
	assert.Zero(t, hub.Count())
}
