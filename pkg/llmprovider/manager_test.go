package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	failTimes  int
	response   *Response
	callCount  int
	err        error
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail || m.callCount <= m.failTimes {
		if m.err != nil {
			return nil, m.err
		}
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func textResponse(provider, text string) *Response {
	return &Response{
		Content:      NewTextMessage(RoleAssistant, text),
		ProviderName: provider,
		Usage:        &Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}
}

func simpleRequest() *Request {
	return &Request{Messages: []Message{NewTextMessage(RoleUser, "hello")}}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: textResponse("primary", "Hello from primary provider")}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: textResponse("secondary", "unused")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 3}, logger)

	resp, err := manager.GenerateContent(context.Background(), simpleRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Text() != "Hello from primary provider" {
		t.Errorf("unexpected text %q", resp.Text())
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary should not be called, got %d calls", secondary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("expected 1 success log, got %d", len(logger.infoMessages))
	}
}

func TestGenerateContent_RetriesBeforeSucceeding(t *testing.T) {
	flaky := &mockProvider{name: "flaky", failTimes: 2, response: textResponse("flaky", "third time lucky")}
	manager := NewManager([]Provider{flaky}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), simpleRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if flaky.callCount != 3 {
		t.Errorf("expected 3 calls, got %d", flaky.callCount)
	}
	if resp.Text() != "third time lucky" {
		t.Errorf("unexpected text %q", resp.Text())
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", response: textResponse("secondary", "Hello from secondary")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), simpleRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("expected secondary provider, got %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("expected primary to be retried twice, got %d", primary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("expected 1 failure log, got %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", shouldFail: true}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 1}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), simpleRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", response: textResponse("secondary", "unused")}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: false, RetryAttempts: 1}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), simpleRequest()); err == nil {
		t.Fatal("expected error")
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary must not be called when fallback is disabled")
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &Config{}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), simpleRequest()); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", shouldFail: true}
	manager := NewManager([]Provider{slow}, &Config{RetryAttempts: 5, RetryDelay: time.Second, MaxTotalTimeout: 20 * time.Millisecond}, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), simpleRequest())
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("timeout not honoured, took %v", elapsed)
	}
}

type statusErr int

func (e statusErr) Error() string   { return fmt.Sprintf("upstream status %d", int(e)) }
func (e statusErr) HTTPStatus() int { return int(e) }

func TestGenerateContent_ClientErrorIsNotRetried(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true, err: statusErr(http.StatusUnauthorized)}
	secondary := &mockProvider{name: "secondary", response: textResponse("secondary", "fallback answer")}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), simpleRequest())
	if err != nil {
		t.Fatalf("expected fallback to succeed, got %v", err)
	}
	if primary.callCount != 1 {
		t.Errorf("401 should not be retried, got %d calls", primary.callCount)
	}
	if resp.Text() != "fallback answer" {
		t.Errorf("unexpected text %q", resp.Text())
	}
}

func TestGenerateContent_RateLimitIsRetriedAndTagged(t *testing.T) {
	limited := &mockProvider{name: "limited", shouldFail: true, err: statusErr(http.StatusTooManyRequests)}
	manager := NewManager([]Provider{limited}, &Config{RetryAttempts: 2, RetryDelay: time.Millisecond}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), simpleRequest())
	if limited.callCount != 2 {
		t.Errorf("429 should be retried, got %d calls", limited.callCount)
	}
	if !errors.Is(err, ErrAllProvidersFailed) || !errors.Is(err, ErrProviderRateLimited) {
		t.Fatalf("expected rate-limited chain failure, got %v", err)
	}
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Provider != "limited" {
		t.Errorf("expected ProviderError for limited, got %v", err)
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{errors.New("connection reset"), true},
		{statusErr(http.StatusBadRequest), false},
		{statusErr(http.StatusNotFound), false},
		{statusErr(http.StatusTooManyRequests), true},
		{statusErr(http.StatusBadGateway), true},
		{fmt.Errorf("wrapped: %w", statusErr(http.StatusForbidden)), false},
	}
	for _, tc := range cases {
		if got := retryable(tc.err); got != tc.want {
			t.Errorf("retryable(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

type recordingObserver struct {
	calls []string
}

func (o *recordingObserver) ObserveProviderCall(provider string, err error, _ time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	o.calls = append(o.calls, provider+":"+outcome)
}

func TestGenerateContent_ObserverSeesEveryAttempt(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", failTimes: 1, response: textResponse("secondary", "ok")}
	obs := &recordingObserver{}

	manager := NewManager([]Provider{primary, secondary},
		&Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
		&mockLogger{}, WithObserver(obs))

	_, err := manager.GenerateContent(context.Background(), simpleRequest())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	want := []string{"primary:error", "primary:error", "secondary:error", "secondary:ok"}
	if fmt.Sprint(obs.calls) != fmt.Sprint(want) {
		t.Errorf("observer calls = %v, want %v", obs.calls, want)
	}
}
