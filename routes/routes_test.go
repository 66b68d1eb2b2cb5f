package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"deskfit/config"
	"deskfit/controllers"
	"deskfit/middlewares"
	"deskfit/models"
	"deskfit/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("SESSION_SECRET", "routes-test-secret")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Meal{},
		&models.Activity{},
		&models.WaterLog{},
	))
	config.DB = db
	controllers.Init(zap.NewNop())

	TemplatesDir = "../templates"
	return SetupRouter()
}

type session struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func (s *session) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	s.t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == middlewares.SessionCookie {
			s.cookie = c
		}
	}
	return w
}

func TestSignupOnboardingActivityFlow(t *testing.T) {
	s := &session{t: t, router: setupApp(t)}

	w := s.do(http.MethodPost, "/signup", url.Values{"username": {"alice"}, "password": {"pw1"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/onboarding", w.Header().Get("Location"))
	require.NotNil(t, s.cookie, "signup must bind the session")

	w = s.do(http.MethodPost, "/save_onboarding", url.Values{
		"sex": {"female"}, "weight": {"60"}, "height": {"170"}, "age": {"30"}, "goal": {"stay fit"},
	})
	require.Equal(t, http.StatusFound, w.Code)

	var user models.User
	require.NoError(t, config.DB.Where("username = ?", "alice").First(&user).Error)
	assert.InDelta(t, 1.7, user.Height, 1e-9, "height form field is cm, stored in meters")
	assert.Equal(t, 60.0, user.Weight)

	w = s.do(http.MethodPost, "/log_activity", url.Values{"duration_minutes": {"30"}})
	require.Equal(t, http.StatusFound, w.Code)

	w = s.do(http.MethodGet, "/get_summary_data", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary services.DailySummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Len(t, summary.Dates, 1)
	assert.Equal(t, []float64{63}, summary.CaloriesBurned)
	assert.Equal(t, []float64{0}, summary.CalorieIntake)
	assert.Equal(t, []float64{0}, summary.WaterIntake)
}

func TestLoginAfterSignup(t *testing.T) {
	s := &session{t: t, router: setupApp(t)}

	s.do(http.MethodPost, "/signup", url.Values{"username": {"bob"}, "password": {"hunter2"}})

	fresh := &session{t: t, router: s.router}
	w := fresh.do(http.MethodPost, "/login", url.Values{"username": {"bob"}, "password": {"hunter2"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	require.NotNil(t, fresh.cookie)
	assert.NotEmpty(t, fresh.cookie.Value)

	// The fresh session resolves to the same account.
	w = fresh.do(http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bob")
}

func TestLoginWrongCredentials(t *testing.T) {
	s := &session{t: t, router: setupApp(t)}
	s.do(http.MethodPost, "/signup", url.Values{"username": {"carol"}, "password": {"right"}})

	fresh := &session{t: t, router: s.router}
	w := fresh.do(http.MethodPost, "/login", url.Values{"username": {"carol"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect username or password")
	assert.Nil(t, fresh.cookie)
}

func TestMealLoggingAndSuggestions(t *testing.T) {
	s := &session{t: t, router: setupApp(t)}
	require.NoError(t, config.DB.Create(&models.Food{Name: "Apple", CaloriesPerGram: 0.52}).Error)

	s.do(http.MethodPost, "/signup", url.Values{"username": {"dana"}, "password": {"pw"}})

	w := s.do(http.MethodPost, "/log_meal", url.Values{"food_name": {"Apple"}, "grams": {"150"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	var meal models.Meal
	require.NoError(t, config.DB.First(&meal).Error)
	assert.InDelta(t, 78.0, meal.Calories, 1e-9)

	// Unknown food without a rate: redirected with an error, nothing stored.
	w = s.do(http.MethodPost, "/log_meal", url.Values{"food_name": {"Durian"}, "grams": {"100"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/dashboard?error=")

	var meals int64
	config.DB.Model(&models.Meal{}).Count(&meals)
	assert.EqualValues(t, 1, meals)

	w = s.do(http.MethodGet, "/food_suggestions?query=app", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var suggestions []services.FoodSuggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &suggestions))
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Apple", suggestions[0].Name)
}

func TestPreferencesDefaults(t *testing.T) {
	s := &session{t: t, router: setupApp(t)}
	s.do(http.MethodPost, "/signup", url.Values{"username": {"erin"}, "password": {"pw"}})

	// Only the theme is submitted; the rest fall back to stock values.
	w := s.do(http.MethodPost, "/update_preferences", url.Values{"theme": {"dark"}})
	require.Equal(t, http.StatusFound, w.Code)

	var user models.User
	require.NoError(t, config.DB.Where("username = ?", "erin").First(&user).Error)
	assert.Equal(t, "dark", user.Theme)
	assert.Equal(t, "medium", user.FontSize)
	assert.Equal(t, "#007bff", user.AccentColor)
}

func TestLogoutClearsSession(t *testing.T) {
	s := &session{t: t, router: setupApp(t)}
	s.do(http.MethodPost, "/signup", url.Values{"username": {"finn"}, "password": {"pw"}})

	w := s.do(http.MethodPost, "/logout", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Empty(t, s.cookie.Value)

	w = s.do(http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestGuardedRoutesRedirectWithoutSession(t *testing.T) {
	s := &session{t: t, router: setupApp(t)}

	for _, path := range []string{"/dashboard", "/settings", "/get_summary_data", "/get_health_status"} {
		w := s.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/", w.Header().Get("Location"), path)
		s.cookie = nil
	}
}
