package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"moviemanager/internal/lookup/tmdb"
	"moviemanager/internal/media"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := tmdb.New("", "https://example.com", "en-US"); err == nil {
		t.Fatal("expected error when api key missing")
	}
	if _, err := tmdb.New("key", " ", "en-US"); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestSearchMovieSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "key" {
			t.Errorf("expected api_key query parameter, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("query") != "Example" {
			t.Errorf("expected query parameter, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":1,"title":"Example"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	resp, err := client.SearchMovie(context.Background(), "Example")
	if err != nil {
		t.Fatalf("SearchMovie returned error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Title != "Example" {
		t.Fatalf("unexpected response: %#v", resp)
	}
}

func TestSearchMovieHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status_code":500}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := client.SearchMovie(context.Background(), "fail"); err == nil {
		t.Fatal("expected error when TMDB returns non-200")
	}
}

func TestSearchMovieEmptyQuery(t *testing.T) {
	client, err := tmdb.New("key", "https://example.com", "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMovie(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestSearcherRoutesKinds(t *testing.T) {
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
		case "/search/movie":
			_, _ = w.Write([]byte(`{"results":[{"id":348,"title":"Alien","release_date":"1979-05-25"},{"id":9,"title":"Alien Lost","release_date":""}]}`))
		case "/search/tv":
			_, _ = w.Write([]byte(`{"results":[{"id":1399,"name":"Game of Thrones","first_air_date":"2011-04-17"}]}`))
		default:
			_, _ = w.Write([]byte(`{"results":[{"id":1,"name":"Someone","media_type":"person"},{"id":2,"title":"Heat","media_type":"movie","release_date":"1995-12-15"}]}`))
		}
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	movies, err := tmdb.NewSearcher(client, media.KindMovie)
	if err != nil {
		t.Fatalf("NewSearcher returned error: %v", err)
	}
	got, err := movies.Search(context.Background(), "Alien")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	want := media.Candidate{ID: "348", Title: "Alien", Year: 1979, Kind: media.KindMovie}
	if got[0] != want {
		t.Fatalf("unexpected candidate %+v", got[0])
	}
	if got[1].HasYear() {
		t.Fatalf("expected missing release date to produce no year, got %+v", got[1])
	}

	shows, _ := tmdb.NewSearcher(client, media.KindTVSeries)
	got, err = shows.Search(context.Background(), "Game of Thrones")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Game of Thrones" || got[0].Year != 2011 || got[0].Kind != media.KindTVSeries {
		t.Fatalf("unexpected tv candidates %+v", got)
	}

	games, _ := tmdb.NewSearcher(client, media.KindVideoGame)
	got, err = games.Search(context.Background(), "Heat")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != 1 || got[0].Kind != media.KindMovie {
		t.Fatalf("expected person results dropped, got %+v", got)
	}

	mu.Lock()
	defer mu.Unlock()
	wantPaths := []string{"/search/movie", "/search/tv", "/search/multi"}
	if len(paths) != len(wantPaths) {
		t.Fatalf("unexpected request paths %v", paths)
	}
	for i := range wantPaths {
		if paths[i] != wantPaths[i] {
			t.Fatalf("unexpected request paths %v", paths)
		}
	}
}

func TestSupports(t *testing.T) {
	if !tmdb.Supports(media.KindMovie) || !tmdb.Supports(media.KindTVSeries) {
		t.Fatal("expected movie and tv series support")
	}
	if tmdb.Supports(media.KindEpisode) {
		t.Fatal("expected episodes to be unsupported")
	}
}
