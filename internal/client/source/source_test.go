package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGetter struct {
	lastIn *s3.GetObjectInput
	body   string
	err    error
}

func (f *fakeGetter) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.lastIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

type fakeOpener struct {
	refs []string
}

func (f *fakeOpener) Open(_ context.Context, ref string) (*Document, error) {
	f.refs = append(f.refs, ref)
	return &Document{Name: ref, Body: io.NopCloser(strings.NewReader(""))}, nil
}

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		ref        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{"s3://resumes/cv.pdf", "resumes", "cv.pdf", false},
		{"s3://resumes/users/7/Иванов.pdf", "resumes", "users/7/Иванов.pdf", false},
		{"s3://resumes", "", "", true},
		{"s3://resumes/", "", "", true},
		{"s3:///cv.pdf", "", "", true},
		{"s3://resumes/dir/", "", "", true},
		{"/tmp/cv.pdf", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			bucket, key, err := ParseS3URI(tt.ref)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRef)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestS3_Open(t *testing.T) {
	fg := &fakeGetter{body: "%PDF"}
	s := &S3{api: fg}

	doc, err := s.Open(context.Background(), "s3://resumes/users/7/cv.pdf")
	require.NoError(t, err)
	defer doc.Body.Close()

	assert.Equal(t, "cv.pdf", doc.Name)
	assert.Equal(t, "resumes", aws.ToString(fg.lastIn.Bucket))
	assert.Equal(t, "users/7/cv.pdf", aws.ToString(fg.lastIn.Key))

	data, err := io.ReadAll(doc.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
}

func TestS3_OpenError(t *testing.T) {
	boom := errors.New("NoSuchKey")
	s := &S3{api: &fakeGetter{err: boom}}

	doc, err := s.Open(context.Background(), "s3://resumes/missing.pdf")
	require.Nil(t, doc)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "s3://resumes/missing.pdf")

	_, err = s.Open(context.Background(), "s3://nokey")
	require.ErrorIs(t, err, ErrInvalidRef)
}

func TestNewS3_AppliesConfig(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	var lo awsconfig.LoadOptions
	loadDefaultAWSConfig = func(_ context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		return aws.Config{Region: lo.Region}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectGetter {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &fakeGetter{}
	}

	s, err := NewS3(context.Background(), S3Config{
		Region:    "us-east-1",
		Endpoint:  "http://127.0.0.1:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	})
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "us-east-1", lo.Region)
	require.NotNil(t, lo.Credentials)
	creds, err := lo.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "minioadmin", creds.AccessKeyID)

	assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
}

func TestNewS3_LoadError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	boom := errors.New("no config")
	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, boom
	}

	_, err := NewS3(context.Background(), S3Config{})
	require.ErrorIs(t, err, boom)
}

func TestLocal_Open(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "Иванов_Иван_Frontend.pdf")
	require.NoError(t, os.WriteFile(p, []byte("resume"), 0o600))

	doc, err := Local{}.Open(context.Background(), p)
	require.NoError(t, err)
	defer doc.Body.Close()
	assert.Equal(t, "Иванов_Иван_Frontend.pdf", doc.Name)

	_, err = Local{}.Open(context.Background(), filepath.Join(dir, "missing.pdf"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Local{}.Open(context.Background(), " ")
	require.ErrorIs(t, err, ErrInvalidRef)
}

func TestResolver_Dispatch(t *testing.T) {
	local := &fakeOpener{}
	remote := &fakeOpener{}
	builds := 0
	r := &Resolver{
		local: local,
		newS3: func(context.Context) (Opener, error) {
			builds++
			return remote, nil
		},
	}

	_, err := r.Open(context.Background(), "cv.pdf")
	require.NoError(t, err)
	assert.Zero(t, builds)

	_, err = r.Open(context.Background(), "s3://b/one.pdf")
	require.NoError(t, err)
	_, err = r.Open(context.Background(), "s3://b/two.pdf")
	require.NoError(t, err)

	assert.Equal(t, []string{"cv.pdf"}, local.refs)
	assert.Equal(t, []string{"s3://b/one.pdf", "s3://b/two.pdf"}, remote.refs)
	assert.Equal(t, 1, builds)
}

func TestResolver_S3InitError(t *testing.T) {
	boom := errors.New("bad creds")
	r := &Resolver{
		local: &fakeOpener{},
		newS3: func(context.Context) (Opener, error) { return nil, boom },
	}

	_, err := r.Open(context.Background(), "s3://b/cv.pdf")
	require.ErrorIs(t, err, boom)
}
