package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishnav/edutech_backend_v1/internal/auth"
	"github.com/vaishnav/edutech_backend_v1/internal/models"
)

func newManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()
	p, err := auth.NewStaticProvider([]auth.Account{
		{Username: "student", Password: "student123", Role: models.RoleStudent},
		{Username: "admin", Password: "admin123", Role: models.RoleAdmin},
	}, 4)
	require.NoError(t, err)
	return NewManager(p, opts...)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	m := newManager(t)

	cases := []auth.Credentials{
		{Username: "nobody", Password: "student123"},
		{Username: "student", Password: "wrong"},
		{Username: "admin", Password: ""},
	}
	for _, c := range cases {
		s, err := m.Login(context.Background(), c)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials, c.Username)
		assert.Nil(t, s)
	}
	assert.Equal(t, 0, m.Count())
	assert.Equal(t, models.RoleNone, m.State("anything"))
}

func TestLoginLogout(t *testing.T) {
	m := newManager(t)

	s, err := m.Login(context.Background(), auth.Credentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, models.RoleAdmin, m.State(s.ID))
	assert.Equal(t, "Admin", s.User.FullName)

	closed := make(chan struct{})
	s.OnClose(func() { close(closed) })

	m.Logout(s.ID)
	assert.Equal(t, models.RoleNone, m.State(s.ID))
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("close hook not called on logout")
	}

	// second logout is a no-op
	m.Logout(s.ID)
	_, ok := m.Get(s.ID)
	assert.False(t, ok)
}

func TestOnCloseUnregister(t *testing.T) {
	m := newManager(t)
	s, err := m.Login(context.Background(), auth.Credentials{Username: "student", Password: "student123"})
	require.NoError(t, err)

	called := false
	cancel := s.OnClose(func() { called = true })
	cancel()
	m.Logout(s.ID)
	assert.False(t, called)
}

func TestLoginDelayHonoursContext(t *testing.T) {
	m := newManager(t, WithDelay(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Login(ctx, auth.Credentials{Username: "student", Password: "student123"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, m.Count())
}

func TestStudentView(t *testing.T) {
	m := newManager(t)
	s, err := m.Login(context.Background(), auth.Credentials{Username: "student", Password: "student123"})
	require.NoError(t, err)

	v := s.StudentView()
	assert.Equal(t, ViewDashboard, v.CurrentView)
	assert.Equal(t, "English", v.SelectedLanguage)

	v = s.SelectSection("CLASS RECORDS")
	assert.Equal(t, "CLASS RECORDS", v.ActiveSection)
	v = s.SelectSection("class records")
	assert.Empty(t, v.ActiveSection)

	v = s.SelectSection("attendance")
	assert.Equal(t, ViewAttendance, v.CurrentView)
	v = s.StudentBack()
	assert.Equal(t, ViewDashboard, v.CurrentView)

	v, err = s.SelectLanguage("japanese")
	require.NoError(t, err)
	assert.Equal(t, "Japanese", v.SelectedLanguage)

	_, err = s.SelectLanguage("Klingon")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
	assert.Equal(t, "Japanese", s.StudentView().SelectedLanguage)
}

func TestAdminView(t *testing.T) {
	m := newManager(t)
	s, err := m.Login(context.Background(), auth.Credentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	v, err := s.ChangeTab("students")
	require.NoError(t, err)
	assert.Equal(t, "students", v.ActiveTab)
	assert.Equal(t, ViewDashboard, v.CurrentView)

	v, err = s.ChangeTab("Events")
	require.NoError(t, err)
	assert.Equal(t, ViewEvents, v.CurrentView)

	_, err = s.ChangeTab(" ")
	assert.ErrorIs(t, err, ErrUnknownView)

	s.SetSearch("12th")
	v = s.AdminBack()
	assert.Equal(t, ViewDashboard, v.CurrentView)
	assert.Equal(t, TabOverview, v.ActiveTab)
	assert.Equal(t, "12th", v.SearchTerm)
}

func TestChatLog(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	m := newManager(t, WithClock(func() time.Time { return now }))
	s, err := m.Login(context.Background(), auth.Credentials{Username: "student", Password: "student123"})
	require.NoError(t, err)

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, models.SenderBot, msgs[0].Sender)

	msg := s.AppendMessage(models.SenderUser, "hi", now)
	assert.Equal(t, 4, msg.ID)

	msgs[0].Message = "mutated"
	assert.NotEqual(t, "mutated", s.Messages()[0].Message)
}

func TestSessionsExpireAfterTTL(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	m := newManager(t, WithTTL(time.Hour), WithClock(func() time.Time { return now }))

	var ids []string
	closed := 0
	for i := 0; i < 3; i++ {
		s, err := m.Login(context.Background(), auth.Credentials{Username: "student", Password: "student123"})
		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Hour), s.ExpiresAt)
		s.OnClose(func() { closed++ })
		ids = append(ids, s.ID)
	}

	now = now.Add(59 * time.Minute)
	assert.Equal(t, 0, m.Sweep())
	_, ok := m.Get(ids[0])
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = m.Get(ids[0])
	assert.False(t, ok)
	assert.Equal(t, models.RoleNone, m.State(ids[1]))
	assert.Equal(t, 1, m.Sweep())
	assert.Equal(t, 0, m.Count())
	assert.Equal(t, 3, closed)
}

func TestNoTTLNeverExpires(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	m := newManager(t, WithClock(func() time.Time { return now }))
	s, err := m.Login(context.Background(), auth.Credentials{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.True(t, s.ExpiresAt.IsZero())

	now = now.Add(24 * 365 * time.Hour)
	assert.Equal(t, 0, m.Sweep())
	assert.Equal(t, 1, m.Count())
}

func TestRunSweeperStopsWithContext(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	m := newManager(t, WithTTL(time.Minute), WithClock(clock))
	_, err := m.Login(context.Background(), auth.Credentials{Username: "student", Password: "student123"})
	require.NoError(t, err)

	mu.Lock()
	now = now.Add(time.Hour)
	mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.RunSweeper(ctx, 5*time.Millisecond)
		close(done)
	}()
	assert.Eventually(t, func() bool { return m.Count() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
