package viewfmt

import (
	"sync"
	"testing"
)

type stubLimits struct {
	mu     sync.Mutex
	post   string
	upload string
	calls  int
}

func (s *stubLimits) PostMaxSize() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.post
}

func (s *stubLimits) UploadMaxFilesize() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upload
}

func (s *stubLimits) set(post, upload string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.post = post
	s.upload = upload
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	tests := map[string]float64{
		"":       0,
		"0":      0,
		"100":    100,
		"100b":   100,
		"1k":     1024,
		"1K":     1024,
		"8M":     8 * 1024 * 1024,
		"2G":     2 * 1024 * 1024 * 1024,
		"1.5m":   1.5 * 1024 * 1024,
		"1t":     1 << 40,
		"1p":     1 << 50,
		"1e":     1 << 60,
		"10.4":   10,
		"10.5":   11,
		"abc":    0,
		"12 MB":  12 * 1024 * 1024,
		"1.2.3k": 1229,
		"64q":    64,
		"M":      0,
	}
	for raw, want := range tests {
		if got := ParseSize(raw); got != want {
			t.Fatalf("ParseSize(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestParseSizeRoundsScaledValue(t *testing.T) {
	t.Parallel()

	// 0.1 KiB is 102.4 bytes.
	if got := ParseSize("0.1k"); got != 102 {
		t.Fatalf("ParseSize(0.1k) = %v, want 102", got)
	}
}

func TestUploadLimitBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		post   string
		upload string
		want   int64
	}{
		{name: "upload lower", post: "8M", upload: "2M", want: 2 * 1024 * 1024},
		{name: "post lower", post: "1M", upload: "2M", want: 1024 * 1024},
		{name: "upload unlimited", post: "8M", upload: "0", want: 8 * 1024 * 1024},
		{name: "malformed upload ignored", post: "16k", upload: "none", want: 16 * 1024},
		{name: "both unset", post: "", upload: "", want: 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := NewFormatter(WithLimitSource(&stubLimits{post: tc.post, upload: tc.upload}))
			if got := f.UploadLimitBytes(); got != tc.want {
				t.Fatalf("UploadLimitBytes() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMaxFileUploadSize(t *testing.T) {
	t.Parallel()

	f := NewFormatter(WithLimitSource(&stubLimits{post: "8M", upload: "2M"}))
	if got := f.MaxFileUploadSize(); got != "2.097 MBytes" {
		t.Fatalf("MaxFileUploadSize() = %q, want %q", got, "2.097 MBytes")
	}
}

func TestMaxFileUploadSizeWithoutSource(t *testing.T) {
	t.Parallel()

	if got := NewFormatter().MaxFileUploadSize(); got != "0.000 Bytes" {
		t.Fatalf("MaxFileUploadSize() = %q", got)
	}
}

func TestMaxFileUploadSizeIsComputedOnce(t *testing.T) {
	t.Parallel()

	source := &stubLimits{post: "8M", upload: "2M"}
	f := NewFormatter(WithLimitSource(source))
	first := f.MaxFileUploadSize()

	source.set("64M", "32M")
	second := f.MaxFileUploadSize()
	if first != second {
		t.Fatalf("second call = %q, want cached %q", second, first)
	}
	if source.calls != 1 {
		t.Fatalf("limit source read %d times, want 1", source.calls)
	}
}

func TestUploadLimitBytesConcurrentCallers(t *testing.T) {
	t.Parallel()

	source := &stubLimits{post: "4M", upload: "0"}
	f := NewFormatter(WithLimitSource(source))

	var wg sync.WaitGroup
	results := make([]int64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.UploadLimitBytes()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != 4*1024*1024 {
			t.Fatalf("caller %d got %d", i, got)
		}
	}
	if source.calls != 1 {
		t.Fatalf("limit source read %d times, want 1", source.calls)
	}
}
