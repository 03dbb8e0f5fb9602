package resolve

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakeRunner struct {
	out string
	err error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	return f.out, f.err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveManifestObjectRepository(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"),
		`{"name":"x","version":"1.2.3","repository":{"url":"git+https://github.com/a/b.git"}}`)

	r := New(&fakeRunner{err: errors.New("unused")})
	gotDir, info := r.Resolve(context.Background(), 1, "next dev -C "+dir)

	if gotDir != dir {
		t.Fatalf("dir = %q, want %q", gotDir, dir)
	}
	if info == nil {
		t.Fatal("expected project info")
	}
	if info.Name != "x" || info.Version != "1.2.3" {
		t.Errorf("info = %+v", info)
	}
	if info.RepositoryURL != "git+https://github.com/a/b.git" {
		t.Errorf("repository url = %q", info.RepositoryURL)
	}
	if got := NormalizeRepoURL(info.RepositoryURL); got != "https://github.com/a/b" {
		t.Errorf("normalized url = %q, want https://github.com/a/b", got)
	}
}

func TestResolveManifestStringRepository(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"),
		`{"name":"y","repository":"git@github.com:a/y.git"}`)

	r := New(&fakeRunner{err: errors.New("unused")})
	_, info := r.Resolve(context.Background(), 1, "vite -C "+dir)

	if info == nil || info.RepositoryURL != "git@github.com:a/y.git" {
		t.Fatalf("info = %+v", info)
	}
}

func TestResolveGitConfigFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{"name":"z","version":"0.1.0"}`)
	writeFile(t, filepath.Join(dir, ".git", "config"), `[core]
	repositoryformatversion = 0
[remote "origin"]
	url = git@github.com:a/z.git
	fetch = +refs/heads/*:refs/remotes/origin/*
[branch "main"]
	remote = origin
`)

	r := New(&fakeRunner{err: errors.New("unused")})
	_, info := r.Resolve(context.Background(), 1, "nuxt dev -C "+dir)

	if info == nil {
		t.Fatal("expected project info")
	}
	if info.RepositoryURL != "git@github.com:a/z.git" {
		t.Errorf("repository url = %q, want origin remote", info.RepositoryURL)
	}
}

func TestGitRemoteURLIgnoresPushURL(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".git", "config"), `[remote "origin"]
	pushurl = git@github.com:a/push.git
	url = git@github.com:a/fetch.git
	fetch = +refs/heads/*:refs/remotes/origin/*
`)

	if got := gitRemoteURL(dir); got != "git@github.com:a/fetch.git" {
		t.Errorf("gitRemoteURL = %q, want the url line, not pushurl", got)
	}
}

func TestGitRemoteURLOnlyOriginSection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".git", "config"), `[remote "upstream"]
	url = git@github.com:up/stream.git
[remote "origin"]
	url = git@github.com:a/origin.git
`)

	if got := gitRemoteURL(dir); got != "git@github.com:a/origin.git" {
		t.Errorf("gitRemoteURL = %q, want the origin section url", got)
	}
}

func TestResolveManifestMissing(t *testing.T) {
	dir := t.TempDir()

	r := New(&fakeRunner{err: errors.New("unused")})
	gotDir, info := r.Resolve(context.Background(), 1, "next dev -C "+dir)

	if gotDir != dir {
		t.Fatalf("dir = %q, want %q", gotDir, dir)
	}
	if info != nil {
		t.Fatalf("expected nil project info without a manifest, got %+v", info)
	}
}

func TestResolveManifestUnparseable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{not json`)

	r := New(&fakeRunner{err: errors.New("unused")})
	if _, info := r.Resolve(context.Background(), 1, "next dev -C "+dir); info != nil {
		t.Fatalf("parse failure must be swallowed, got %+v", info)
	}
}

func TestResolveCwdFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{"name":"fallback"}`)

	r := New(&fakeRunner{out: "p4242\nfcwd\nn" + dir})
	gotDir, info := r.Resolve(context.Background(), 4242, "node server.js")

	if gotDir != dir {
		t.Fatalf("dir = %q, want fd-inspection cwd %q", gotDir, dir)
	}
	if info == nil || info.Name != "fallback" {
		t.Fatalf("info = %+v", info)
	}
}

func TestResolveNothingFound(t *testing.T) {
	r := New(&fakeRunner{err: errors.New("lsof timed out")})
	dir, info := r.Resolve(context.Background(), 7, "node server.js")

	if dir != "" || info != nil {
		t.Fatalf("expected empty result, got dir=%q info=%+v", dir, info)
	}
}
