package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/blindledger/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ts = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

func TestNew_Fields(t *testing.T) {
	e := New(VoteCast, ts, "market", "m1", "side", "yes", "dangling")
	assert.Equal(t, VoteCast, e.Name)
	assert.Equal(t, ts, e.Time)
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, map[string]any{"market": "m1", "side": "yes"}, e.Fields)

	assert.Nil(t, New(SeasonStarted, ts).Fields)
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	ctx := context.Background()
	require.NoError(t, r.Publish(ctx, []Event{New(MarketCreated, ts, "id", "a"), New(VoteCast, ts)}))
	require.NoError(t, r.Publish(ctx, []Event{New(MarketCreated, ts, "id", "b")}))

	assert.Equal(t, []string{MarketCreated, VoteCast, MarketCreated}, r.Names())
	last, ok := r.Last(MarketCreated)
	require.True(t, ok)
	assert.Equal(t, "b", last.Fields["id"])
	_, ok = r.Last(PrizeClaimed)
	assert.False(t, ok)

	r.Reset()
	assert.Empty(t, r.Events())
}

type failingSink struct{ err error }

func (f failingSink) Publish(context.Context, []Event) error { return f.err }

func TestMulti_TriesAll(t *testing.T) {
	rec := &Recorder{}
	boom := errors.New("boom")
	m := Multi{failingSink{boom}, rec, NewLogSink(logging.Nop())}

	err := m.Publish(context.Background(), []Event{New(RequestOpened, ts)})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{RequestOpened}, rec.Names())

	assert.NoError(t, Multi{rec}.Publish(context.Background(), nil))
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
	b, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, b)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Sink_Publish(t *testing.T) {
	fake := &fakeS3{}
	sink := NewS3Sink(fake, "archive", "")

	batch := []Event{New(RequestCompleted, ts, "request_id", uint64(7), "success", true)}
	require.NoError(t, sink.Publish(context.Background(), batch))
	require.Len(t, fake.inputs, 1)

	in := fake.inputs[0]
	assert.Equal(t, "archive", aws.ToString(in.Bucket))
	assert.True(t, strings.HasPrefix(aws.ToString(in.Key), "events/2025/03/04/"), aws.ToString(in.Key))
	assert.True(t, strings.HasSuffix(aws.ToString(in.Key), ".json"))
	assert.Equal(t, "application/json", aws.ToString(in.ContentType))

	var got []Event
	require.NoError(t, json.Unmarshal(fake.bodies[0], &got))
	require.Len(t, got, 1)
	assert.Equal(t, batch[0].ID, got[0].ID)
	assert.Equal(t, RequestCompleted, got[0].Name)
	assert.Equal(t, true, got[0].Fields["success"])
}

func TestS3Sink_EmptyBatchAndError(t *testing.T) {
	fake := &fakeS3{}
	sink := NewS3Sink(fake, "archive", "audit")
	require.NoError(t, sink.Publish(context.Background(), nil))
	assert.Empty(t, fake.inputs)

	fake.err = errors.New("denied")
	err := sink.Publish(context.Background(), []Event{New(VoteCast, ts)})
	assert.ErrorContains(t, err, "denied")
}

func TestNewS3Client(t *testing.T) {
	c, err := NewS3Client(context.Background(), S3Options{
		Region: "us-east-1", BaseEndpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s",
	})
	require.NoError(t, err)
	assert.NotNil(t, c)
}
