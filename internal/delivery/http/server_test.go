package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"collegeblog/config"
	httpmiddleware "collegeblog/internal/delivery/http/middleware"
	"collegeblog/internal/delivery/http/router"
	"collegeblog/internal/delivery/http/router/handler"
	"collegeblog/internal/domain/service"
	"collegeblog/internal/infra/auth"
	"collegeblog/internal/infra/persistence/database"
	"collegeblog/internal/infra/persistence/model"
	"collegeblog/internal/infra/pubsub"
	"collegeblog/internal/infra/qrcode"
	"collegeblog/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	echo   *echo.Echo
	db     *gorm.DB
	tokens service.TokenService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.SecretKey.Access = "integration-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true, Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    t.Context(),
		Config: cfg,
		Logger: log,
	})
	require.NoError(t, err)

	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     database.NewUserRepository(db),
		Hasher:       auth.NewBcryptHasherWithCost(4),
		TokenService: tokens,
		Logger:       log,
	})
	blogUC := impl.NewBlogService(impl.BlogServiceParams{
		BlogRepo:       database.NewBlogRepository(db),
		CommentRepo:    database.NewCommentRepository(db),
		LikeRepo:       database.NewLikeRepository(db),
		EventPublisher: publisher,
		QRCodeService:  qrcode.NewQRCodeService(128, "M", "https://blog.college.edu"),
		Logger:         log,
	})

	e := NewEcho(HTTPParams{
		Config: cfg,
		Logger: log,
		RouterParams: router.RouterParams{
			UserHandler:    handler.NewUserHandler(userUC, log),
			BlogHandler:    handler.NewBlogHandler(blogUC, log),
			AuthMiddleware: httpmiddleware.NewAuthMiddleware(tokens, log),
		},
		RequestID:    httpmiddleware.NewRequestIDMiddleware(log),
		ErrorHandler: httpmiddleware.NewErrorMiddleware(log),
	})

	return &testApp{echo: e, db: db, tokens: tokens}
}

func (app *testApp) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	return rec
}

type authBody struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID        int64  `json:"id"`
		FirstName string `json:"firstName"`
		Email     string `json:"email"`
		Role      string `json:"role"`
	} `json:"user"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func (app *testApp) register(t *testing.T, email string) authBody {
	t.Helper()

	rec := app.do(http.MethodPost, "/api/register", "",
		`{"firstName":"Ada","lastName":"Lovelace","email":"`+email+`","password":"pw","role":"student"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[authBody](t, rec)
}

func TestServer_RegisterAndLogin(t *testing.T) {
	app := newTestApp(t)

	registered := app.register(t, "a@x.com")
	assert.Equal(t, "User created successfully", registered.Message)
	assert.Equal(t, "a@x.com", registered.User.Email)
	assert.Equal(t, "student", registered.User.Role)

	claims, err := app.tokens.Verify(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)

	rec := app.do(http.MethodPost, "/api/login", "", `{"email":"a@x.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	loggedIn := decode[authBody](t, rec)
	assert.Equal(t, "Login successful", loggedIn.Message)
	assert.NotEqual(t, registered.Token, loggedIn.Token)

	loginClaims, err := app.tokens.Verify(loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, loginClaims.UserID)
	assert.Equal(t, claims.Email, loginClaims.Email)

	var stored model.UserModel
	require.NoError(t, app.db.First(&stored, claims.UserID).Error)
	assert.NotEqual(t, "pw", stored.Password)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"))
}

func TestServer_RegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "a@x.com")

	rec := app.do(http.MethodPost, "/api/register", "",
		`{"firstName":"B","lastName":"C","email":"a@x.com","password":"other","role":"admin"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"User already exists"}`, rec.Body.String())
}

func TestServer_LoginFailuresAreIndistinguishable(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "a@x.com")

	wrongPassword := app.do(http.MethodPost, "/api/login", "", `{"email":"a@x.com","password":"nope"}`)
	unknownEmail := app.do(http.MethodPost, "/api/login", "", `{"email":"b@x.com","password":"pw"}`)

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, wrongPassword.Body.String())
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestServer_AuthGate(t *testing.T) {
	app := newTestApp(t)
	user := app.register(t, "a@x.com")
	body := `{"title":"Hello","content":"World"}`

	rec := app.do(http.MethodPost, "/api/blogs", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Access token required"}`, rec.Body.String())

	rec = app.do(http.MethodPost, "/api/blogs", "not-a-jwt", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())

	tampered := user.Token + "x"
	rec = app.do(http.MethodPost, "/api/blogs", tampered, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.do(http.MethodPost, "/api/blogs", user.Token, body)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[struct {
		Message string `json:"message"`
		BlogID  int64  `json:"blogId"`
	}](t, rec)
	assert.Equal(t, "Blog created successfully", created.Message)

	rec = app.do(http.MethodGet, "/api/blogs/"+itoa(created.BlogID), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	blog := decode[map[string]any](t, rec)
	assert.Equal(t, "Hello", blog["title"])
	assert.InDelta(t, float64(user.User.ID), blog["author_id"], 0)
	assert.Equal(t, "Ada", blog["first_name"])
	assert.Equal(t, "Lovelace", blog["last_name"])
}

func TestServer_BlogsCommentsAndLikes(t *testing.T) {
	app := newTestApp(t)
	user := app.register(t, "a@x.com")

	rec := app.do(http.MethodPost, "/api/blogs", user.Token, `{"title":"One","content":"first"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(http.MethodGet, "/api/blogs", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	blogs := decode[[]map[string]any](t, rec)
	require.Len(t, blogs, 1)
	blogID := int64(blogs[0]["id"].(float64))

	rec = app.do(http.MethodPost, "/api/blogs/"+itoa(blogID)+"/comments", user.Token, `{"content":"great post"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Comment added successfully"`)

	rec = app.do(http.MethodGet, "/api/blogs/"+itoa(blogID)+"/comments", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	comments := decode[[]map[string]any](t, rec)
	require.Len(t, comments, 1)
	assert.Equal(t, "great post", comments[0]["content"])
	assert.Equal(t, "Ada", comments[0]["first_name"])

	rec = app.do(http.MethodPost, "/api/blogs/"+itoa(blogID)+"/like", user.Token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Blog liked successfully"}`, rec.Body.String())

	rec = app.do(http.MethodPost, "/api/blogs/"+itoa(blogID)+"/like", user.Token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"You already liked this blog"}`, rec.Body.String())

	var likes int64
	require.NoError(t, app.db.Model(&model.LikeModel{}).Count(&likes).Error)
	assert.Equal(t, int64(1), likes)
}

func TestServer_PublicReadErrors(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/api/blogs/999", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Blog not found"}`, rec.Body.String())

	rec = app.do(http.MethodGet, "/api/blogs/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodGet, "/api/blogs/999/qrcode", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(http.MethodGet, "/api/blogs", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestServer_QRCodeAndHealth(t *testing.T) {
	app := newTestApp(t)
	user := app.register(t, "a@x.com")
	rec := app.do(http.MethodPost, "/api/blogs", user.Token, `{"title":"One","content":"first"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	blogID := decode[struct {
		BlogID int64 `json:"blogId"`
	}](t, rec).BlogID

	rec = app.do(http.MethodGet, "/api/blogs/"+itoa(blogID)+"/qrcode", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes()[:4])

	rec = app.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_BodyLimitAndUnknownRoute(t *testing.T) {
	app := newTestApp(t)
	user := app.register(t, "a@x.com")

	oversized := `{"title":"Big","content":"` + strings.Repeat("x", 2048) + `"}`
	rec := app.do(http.MethodPost, "/api/blogs", user.Token, oversized)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)

	rec = app.do(http.MethodGet, "/api/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}
