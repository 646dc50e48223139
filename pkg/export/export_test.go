package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/kview-dev/kview/internal/errors"
	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/tag"
)

func helloApp(s *core.Session) error {
	s.Document().AppendMount("main")
	core.NewRoot(s, "main", core.WithInit(func(r *core.Root) {
		r.Add(tag.New("h1", "Hello", core.WithClassName("title")))
	}))
	return nil
}

type fakeS3 struct {
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, string, []byte, string) error {
	return fmt.Errorf("disk full")
}

func (failingPublisher) String() string { return "failing" }

func TestRenderStatic(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, helloApp, Options{Title: "Hello"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"<!DOCTYPE html>", "<title>Hello</title>", `class="title"`, "Hello</h1>"} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q:\n%s", want, out)
		}
	}
	for _, unwanted := range []string{"data-kv-nid", "__KVIEW__", "client.js"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("static page contains %q", unwanted)
		}
	}
}

func TestRenderAppError(t *testing.T) {
	tests := []struct {
		name string
		app  App
	}{
		{"error", func(*core.Session) error { return fmt.Errorf("no data") }},
		{"panic", func(*core.Session) error { panic("boom") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Render(io.Discard, tt.app, Options{})
			if !errors.HasCode(err, "E180") {
				t.Fatalf("err = %v, want E180", err)
			}
		})
	}
}

func TestExportToDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")
	res, err := Export(context.Background(), helloApp, NewDirPublisher(dir), Options{Title: "Hello"})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.ID == "" {
		t.Error("result has no ID")
	}
	if len(res.Files) != 1 || res.Files[0] != IndexFile {
		t.Errorf("Files = %v, want [%s]", res.Files, IndexFile)
	}

	data, err := os.ReadFile(filepath.Join(dir, IndexFile))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if len(data) != res.Bytes {
		t.Errorf("Bytes = %d, file has %d", res.Bytes, len(data))
	}
	if !strings.Contains(string(data), "Hello</h1>") {
		t.Errorf("index.html missing content:\n%s", data)
	}
}

func TestExportToS3(t *testing.T) {
	client := &fakeS3{}
	pub := NewS3Publisher(client, "site", "/releases/v1/")
	if _, err := Export(context.Background(), helloApp, pub, Options{}); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(client.inputs) != 1 {
		t.Fatalf("PutObject calls = %d, want 1", len(client.inputs))
	}
	in := client.inputs[0]
	if got := aws.ToString(in.Bucket); got != "site" {
		t.Errorf("Bucket = %q", got)
	}
	if got := aws.ToString(in.Key); got != "releases/v1/index.html" {
		t.Errorf("Key = %q", got)
	}
	if got := aws.ToString(in.ContentType); got != ContentTypeHTML {
		t.Errorf("ContentType = %q", got)
	}
	if !bytes.Contains(client.bodies[0], []byte("Hello</h1>")) {
		t.Errorf("body missing content")
	}
	if got := pub.String(); got != "s3://site/releases/v1" {
		t.Errorf("String() = %q", got)
	}
}

func TestExportPublishError(t *testing.T) {
	_, err := Export(context.Background(), helloApp, failingPublisher{}, Options{})
	if !errors.HasCode(err, "E180") {
		t.Fatalf("err = %v, want E180", err)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("error %q does not carry the cause", err)
	}

	_, err = Export(context.Background(), helloApp, NewS3Publisher(&fakeS3{err: fmt.Errorf("denied")}, "b", ""), Options{})
	if !errors.HasCode(err, "E180") {
		t.Fatalf("s3 err = %v, want E180", err)
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"index.html", true},
		{"assets/app.css", true},
		{"", false},
		{"../escape.html", false},
		{"/abs.html", false},
		{"a//b.html", false},
	}
	for _, tt := range tests {
		_, err := cleanName(tt.name)
		if (err == nil) != tt.ok {
			t.Errorf("cleanName(%q) err = %v, want ok=%v", tt.name, err, tt.ok)
		}
	}
}

func TestDirPublisherCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewDirPublisher(t.TempDir()).Publish(ctx, IndexFile, nil, ContentTypeHTML); err == nil {
		t.Fatal("Publish with canceled context succeeded")
	}
}
