package jetstream_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/domain"
	"github.com/hoofledger/hoofledger/internal/mocks"
	"github.com/hoofledger/hoofledger/internal/providers/jetstream"
)

type testPublisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
}

func setupTestPublisher(t *testing.T) *testPublisherMocks {
	ctrl := gomock.NewController(t)
	return &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}
}

func testConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://127.0.0.1:4222",
		StreamName:     "MARKET_EVENTS",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "hoofledger-test",
	}
}

func TestSubject(t *testing.T) {
	event := domain.NewMarketEvent(time.Now(), domain.MarketEventAuctionCreated, domain.ChainScrollSepolia, "7", "0xabc", "")
	assert.Equal(t, "market.534351.auction.created", jetstream.Subject(event))
}

func TestNewPublisher_EnsuresStream(t *testing.T) {
	m := setupTestPublisher(t)
	defer m.ctrl.Finish()

	m.natsJS.EXPECT().Connect("nats://127.0.0.1:4222", gomock.Any()).Return(m.conn, m.js, nil)
	m.js.EXPECT().EnsureStream(gomock.Any(), "MARKET_EVENTS", []string{"market.>"}).Return(nil)
	m.conn.EXPECT().ConnectedUrl().Return("nats://127.0.0.1:4222").AnyTimes()

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), m.natsJS, adapter.NewJSON())
	require.NoError(t, err)
	require.NotNil(t, pub)
}

func TestNewPublisher_StreamFailureClosesConnection(t *testing.T) {
	m := setupTestPublisher(t)
	defer m.ctrl.Finish()

	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(m.conn, m.js, nil)
	m.js.EXPECT().EnsureStream(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("no permission"))
	m.conn.EXPECT().Close()

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), m.natsJS, adapter.NewJSON())
	require.Error(t, err)
	assert.Nil(t, pub)
	assert.Contains(t, err.Error(), "no permission")
}

func TestPublishMarketEvent(t *testing.T) {
	m := setupTestPublisher(t)
	defer m.ctrl.Finish()

	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(m.conn, m.js, nil)
	m.js.EXPECT().EnsureStream(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.conn.EXPECT().ConnectedUrl().Return("nats://127.0.0.1:4222").AnyTimes()

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), m.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	event := domain.NewMarketEvent(time.Now(), domain.MarketEventCattleMinted, domain.ChainScrollSepolia, "3", "0xdef", "")

	m.js.EXPECT().
		Publish(gomock.Any(), "market.534351.cattle.minted", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			assert.Contains(t, string(data), `"token_id":"3"`)
			assert.Contains(t, string(data), event.ID)
			return &natsjs.PubAck{Stream: "MARKET_EVENTS", Sequence: 1}, nil
		})

	require.NoError(t, pub.PublishMarketEvent(context.Background(), event))

	m.js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	err = pub.PublishMarketEvent(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")

	m.conn.EXPECT().Drain().Return(nil)
	pub.Close()
}
