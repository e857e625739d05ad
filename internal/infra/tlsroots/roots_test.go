package tlsroots

import (
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// serverPEM starts a TLS test server and returns it with its certificate
// in PEM form.
func serverPEM(t *testing.T) (*httptest.Server, []byte) {
	t.Helper()
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)
	return srv, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw})
}

func get(pool *Pool, url string) error {
	client := &http.Client{Transport: &http.Transport{TLSClientConfig: pool.TLSConfig()}}
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func TestPool_TrustsAddedCert(t *testing.T) {
	srv, certPEM := serverPEM(t)

	if err := get(NewEmptyPool(), srv.URL); err == nil {
		t.Fatal("an empty pool should not trust the test server")
	}

	pool := NewEmptyPool()
	if err := pool.AddCertPEM(certPEM); err != nil {
		t.Fatalf("AddCertPEM() error = %v", err)
	}
	if pool.Added() != 1 {
		t.Errorf("Added() = %d", pool.Added())
	}
	if err := get(pool, srv.URL); err != nil {
		t.Errorf("GET with the added root: %v", err)
	}
}

func TestAddCertPEM_Errors(t *testing.T) {
	pool := NewEmptyPool()

	if err := pool.AddCertPEM(nil); !errors.Is(err, ErrNoCertsFound) {
		t.Errorf("empty data error = %v", err)
	}

	key := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte("x")})
	if err := pool.AddCertPEM(key); !errors.Is(err, ErrNoCertsFound) {
		t.Errorf("non-certificate block error = %v", err)
	}

	bad := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte("garbage")})
	if err := pool.AddCertPEM(bad); err == nil || errors.Is(err, ErrNoCertsFound) {
		t.Errorf("corrupt certificate error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	srv, certPEM := serverPEM(t)
	dir := t.TempDir()

	file := filepath.Join(dir, "ca.pem")
	if err := os.WriteFile(file, certPEM, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{file, dir} {
		pool, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", path, err)
		}
		if pool.Added() != 1 {
			t.Errorf("Load(%s) added %d certs", path, pool.Added())
		}
		if err := get(pool, srv.URL); err != nil {
			t.Errorf("Load(%s): %v", path, err)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.pem")); err == nil {
		t.Error("missing file should fail")
	}

	empty := t.TempDir()
	if _, err := Load(empty); !errors.Is(err, ErrNoCertsFound) {
		t.Errorf("empty dir error = %v", err)
	}

	bogus := filepath.Join(t.TempDir(), "bogus.crt")
	if err := os.WriteFile(bogus, []byte("not pem"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bogus); !errors.Is(err, ErrNoCertsFound) {
		t.Errorf("bogus file error = %v", err)
	}
}
