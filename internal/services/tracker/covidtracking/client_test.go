package covidtracking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestClientFetchesBothFeeds(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		paths []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case usDailyPath:
			_, _ = w.Write([]byte(`[{"date":20210307,"positiveIncrease":41835,"deathIncrease":842,"hospitalizedIncrease":726}]`))
		case statesDailyPath:
			_, _ = w.Write([]byte(`[{"date":20210307,"state":"CA","positive":3501394,"death":54124,"recovered":null}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", server.Client())
	us, err := client.USDaily(context.Background())
	if err != nil {
		t.Fatalf("us daily: %v", err)
	}
	if len(us) != 1 || *us[0].PositiveIncrease != 41835 {
		t.Fatalf("us daily = %+v", us)
	}
	if want := time.Date(2021, time.March, 7, 0, 0, 0, 0, time.UTC); !us[0].Date.Equal(want) {
		t.Fatalf("date = %v, want %v", us[0].Date.Time, want)
	}

	states, err := client.StatesDaily(context.Background())
	if err != nil {
		t.Fatalf("states daily: %v", err)
	}
	if states[0].State != "CA" || *states[0].Death != 54124 {
		t.Fatalf("states daily = %+v", states)
	}
	if states[0].Recovered != nil {
		t.Fatalf("recovered = %v, want nil", *states[0].Recovered)
	}
	mu.Lock()
	defer mu.Unlock()
	if strings.Join(paths, ",") != usDailyPath+","+statesDailyPath {
		t.Fatalf("paths = %v", paths)
	}
}

func TestClientReportsUpstreamStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, server.Client()).USDaily(context.Background())
	if err == nil || !strings.Contains(err.Error(), "410") {
		t.Fatalf("error = %v, want 410 status", err)
	}
}

func TestClientRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	if _, err := NewClient(server.URL, server.Client()).StatesDaily(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	t.Parallel()

	if got := NewClient("  ", nil).BaseURL(); got != DefaultBaseURL {
		t.Fatalf("base url = %q, want %q", got, DefaultBaseURL)
	}
}

func TestDateUnmarshalAcceptsStringAndNull(t *testing.T) {
	t.Parallel()

	var d Date
	if err := d.UnmarshalJSON([]byte(`"20200413"`)); err != nil {
		t.Fatalf("unmarshal string date: %v", err)
	}
	if d.Format("2006-01-02") != "2020-04-13" {
		t.Fatalf("date = %v", d.Time)
	}
	if err := d.UnmarshalJSON([]byte("null")); err != nil || !d.IsZero() {
		t.Fatalf("null date = %v, %v", d.Time, err)
	}
	if err := d.UnmarshalJSON([]byte("2020")); err == nil {
		t.Fatal("expected short date error")
	}
}
