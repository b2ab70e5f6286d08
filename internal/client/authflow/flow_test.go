package authflow

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/eldercare/internal/client/api"
	"github.com/dmitrijs2005/eldercare/internal/client/session"
	"github.com/dmitrijs2005/eldercare/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct{ data map[string][]byte }

func (m *memRepo) Get(_ context.Context, k string) ([]byte, error) { return m.data[k], nil }
func (m *memRepo) Set(_ context.Context, k string, v []byte) error { m.data[k] = v; return nil }
func (m *memRepo) Delete(_ context.Context, k string) error        { delete(m.data, k); return nil }
func (m *memRepo) Clear(context.Context) error                     { m.data = map[string][]byte{}; return nil }
func (m *memRepo) List(context.Context) (map[string][]byte, error) { return m.data, nil }

type fakeAPI struct {
	registerErr error
	loginToken  string
	loginErr    error

	registered []api.RegisterRequest
	logins     []api.LoginRequest
}

func (f *fakeAPI) Register(_ context.Context, r api.RegisterRequest) error {
	f.registered = append(f.registered, r)
	return f.registerErr
}

func (f *fakeAPI) Login(_ context.Context, r api.LoginRequest) (string, error) {
	f.logins = append(f.logins, r)
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) Me(context.Context, string) (*api.Profile, error)  { return nil, nil }
func (f *fakeAPI) Health(context.Context) (*api.HealthStatus, error) { return nil, nil }

func newFlow(fa *fakeAPI) (*Flow, *memRepo) {
	repo := &memRepo{data: map[string][]byte{}}
	return New(fa, session.New(repo)), repo
}

func TestEnter_NoToken_ShowsLogin(t *testing.T) {
	f, _ := newFlow(&fakeAPI{})

	v, nav, err := f.Enter(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Nav{}, nav)
	assert.Equal(t, session.ScreenLogin, v.Screen)
}

func TestEnter_WithToken_GoesHome(t *testing.T) {
	f, repo := newFlow(&fakeAPI{})
	repo.data[storage.KeyToken] = []byte("tok")

	_, nav, err := f.Enter(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.ScreenHome, nav.To)
}

func TestNavigationClearsError(t *testing.T) {
	f, _ := newFlow(&fakeAPI{})
	f.SubmitLogin(context.Background(), LoginForm{})
	require.NotEmpty(t, f.View().Error)

	f.ShowRegister()
	v := f.View()
	assert.Equal(t, session.ScreenRegister, v.Screen)
	assert.Empty(t, v.Error)

	f.ShowLogin()
	assert.Equal(t, session.ScreenLogin, f.View().Screen)
}

func TestSubmitRegister_ValidationSkipsServer(t *testing.T) {
	fa := &fakeAPI{}
	f, _ := newFlow(fa)
	f.ShowRegister()

	res := f.SubmitRegister(context.Background(), RegisterForm{Email: "bad", Password: "secret1", ConfirmPassword: "secret1"})
	assert.False(t, res.OK)
	assert.Equal(t, MsgEmailInvalid, res.Error)
	assert.Empty(t, fa.registered)
	assert.Equal(t, session.ScreenRegister, f.View().Screen)
	assert.Equal(t, MsgEmailInvalid, f.View().Error)
}

func TestSubmitRegister_SuccessQueuesOneShotBanner(t *testing.T) {
	fa := &fakeAPI{}
	f, repo := newFlow(fa)
	f.ShowRegister()

	res := f.SubmitRegister(context.Background(), RegisterForm{
		Name: " Ann ", Email: " ann@example.com ", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.True(t, res.OK)
	assert.Equal(t, Nav{}, res.Nav, "registration must not navigate Home")
	assert.NotContains(t, repo.data, storage.KeyToken, "registration must not log in")

	require.Len(t, fa.registered, 1)
	assert.Equal(t, api.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"}, fa.registered[0])

	v := f.View()
	assert.Equal(t, session.ScreenLogin, v.Screen)
	assert.Equal(t, "ann@example.com", v.Email)
	assert.Equal(t, MsgRegistered, v.Banner)
	assert.False(t, v.Busy)

	assert.Empty(t, f.View().Banner, "banner is shown once")
	assert.Equal(t, "ann@example.com", f.View().Email)
}

func TestSubmitRegister_ServerError(t *testing.T) {
	fa := &fakeAPI{registerErr: &api.Error{Status: http.StatusConflict, Message: "email already registered"}}
	f, _ := newFlow(fa)
	f.ShowRegister()

	res := f.SubmitRegister(context.Background(), RegisterForm{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1"})
	assert.False(t, res.OK)
	assert.Equal(t, "email already registered", res.Error)

	v := f.View()
	assert.Equal(t, session.ScreenRegister, v.Screen)
	assert.Equal(t, "email already registered", v.Error)
	assert.False(t, v.Busy)
}

func TestSubmitRegister_EmptyServerMessageFallsBack(t *testing.T) {
	fa := &fakeAPI{registerErr: &api.Error{Status: 500}}
	f, _ := newFlow(fa)

	res := f.SubmitRegister(context.Background(), RegisterForm{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1"})
	assert.Equal(t, MsgRegisterFailed, res.Error)
}

func TestSubmitLogin_Success(t *testing.T) {
	fa := &fakeAPI{loginToken: "jwt-1"}
	f, repo := newFlow(fa)

	res := f.SubmitLogin(context.Background(), LoginForm{Email: " a@b.co ", Password: "pw"})
	require.True(t, res.OK)
	assert.Equal(t, session.ScreenHome, res.Nav.To)
	assert.Equal(t, []byte("jwt-1"), repo.data[storage.KeyToken])
	assert.Equal(t, "a@b.co", fa.logins[0].Email)
}

func TestSubmitLogin_Failure(t *testing.T) {
	fa := &fakeAPI{loginErr: &api.Error{Status: http.StatusUnauthorized, Message: "wrong password"}}
	f, repo := newFlow(fa)

	res := f.SubmitLogin(context.Background(), LoginForm{Email: "a@b.co", Password: "bad"})
	assert.False(t, res.OK)
	assert.Equal(t, "wrong password", res.Error)
	assert.Equal(t, Nav{}, res.Nav)
	assert.NotContains(t, repo.data, storage.KeyToken)
	assert.Equal(t, session.ScreenLogin, f.View().Screen)
}

func TestSubmitLogin_ValidationSkipsServer(t *testing.T) {
	fa := &fakeAPI{}
	f, _ := newFlow(fa)

	res := f.SubmitLogin(context.Background(), LoginForm{Email: "a@b.co"})
	assert.Equal(t, MsgPasswordRequired, res.Error)
	assert.Empty(t, fa.logins)
}

func TestOnBusy_ReportsInFlightSubmissions(t *testing.T) {
	fa := &fakeAPI{loginToken: "tok"}
	f, _ := newFlow(fa)

	var labels []string
	f.OnBusy(func(v View) { labels = append(labels, v.BusyLabel()) })

	f.ShowRegister()
	require.True(t, f.SubmitRegister(context.Background(), RegisterForm{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1"}).OK)
	require.True(t, f.SubmitLogin(context.Background(), LoginForm{Email: "a@b.co", Password: "secret1"}).OK)

	assert.Equal(t, []string{BusyRegister, "", BusyLogin, ""}, labels)
	assert.False(t, f.View().Busy)
}

func TestOnBusy_NotCalledWhenValidationFails(t *testing.T) {
	f, _ := newFlow(&fakeAPI{})

	called := false
	f.OnBusy(func(View) { called = true })

	f.SubmitLogin(context.Background(), LoginForm{})
	assert.False(t, called)
}
