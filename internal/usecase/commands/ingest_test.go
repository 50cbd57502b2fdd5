//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealstream/internal/domain/offer"
	"dealstream/internal/infra"
	sqlc "dealstream/internal/infra/sqlc/generated"
	"dealstream/internal/pkg/errs"
	"dealstream/internal/pkg/ptr"
	"dealstream/internal/usecase/commands"
	commandsmock "dealstream/tests/mock/commands"
	sharedmock "dealstream/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IngestCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	offers      *sharedmock.MockOfferRepository
	source      *commandsmock.MockOfferSource
	catalog     *commandsmock.MockSupplementCatalog
	broadcaster *commandsmock.MockOfferBroadcaster
	ingest      commands.IngestCommands
}

func (s *IngestCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.offers = sharedmock.NewMockOfferRepository(s.mockCtrl)
	s.source = commandsmock.NewMockOfferSource(s.mockCtrl)
	s.catalog = commandsmock.NewMockSupplementCatalog(s.mockCtrl)
	s.broadcaster = commandsmock.NewMockOfferBroadcaster(s.mockCtrl)

	s.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()

	s.ingest = commands.NewIngestCommands(s.uow, s.offers, s.source, s.catalog, offer.NewDefaultNormalizer(), s.broadcaster)
}

func (s *IngestCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIngestCommandsSuite(t *testing.T) {
	suite.Run(t, new(IngestCommandsTestSuite))
}

func widget() offer.RemoteRecord {
	return offer.RemoteRecord{
		ID:          "42",
		Title:       ptr.Of("Widget"),
		Description: ptr.Of("A small widget"),
		Price:       ptr.Of(5.0),
		Category:    ptr.Of("electronics"),
		Image:       ptr.Of("https://img/42.png"),
	}
}

func insertAs(id int64) func(context.Context, sqlc.DBTX, *offer.Offer) (bool, error) {
	return func(_ context.Context, _ sqlc.DBTX, o *offer.Offer) (bool, error) {
		o.MarkPersisted(id, time.Now())
		return true, nil
	}
}

func (s *IngestCommandsTestSuite) TestRun_NewRemoteRecord() {
	s.source.EXPECT().FetchAll(gomock.Any()).Return([]offer.RemoteRecord{widget()}, nil)
	s.catalog.EXPECT().Records().Return(nil)

	var stored *offer.Offer
	s.offers.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, db sqlc.DBTX, o *offer.Offer) (bool, error) {
			stored = o
			return insertAs(11)(ctx, db, o)
		})
	s.broadcaster.EXPECT().PublishNewOffer(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, o *offer.Offer) {
			s.Same(stored, o)
		}).Times(1)

	result, err := s.ingest.Run(context.Background())

	s.Require().NoError(err)
	s.Equal(1, result.Inserted)
	s.Equal(1, result.Fetched)
	s.Require().NotNil(stored)
	s.Equal(offer.SourceRemoteAPI, stored.Source())
	s.Equal("42", stored.ExternalID())
	s.Equal(offer.CategoryElectronics, stored.Category())
	s.Equal(int64(50), stored.Price())
	s.Equal(offer.Fingerprint("42"), stored.ContentHash())
	s.Equal(int64(11), stored.ID())
}

func (s *IngestCommandsTestSuite) TestRun_AlreadyStored() {
	s.source.EXPECT().FetchAll(gomock.Any()).Return([]offer.RemoteRecord{widget()}, nil)
	s.catalog.EXPECT().Records().Return(nil)
	s.offers.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.broadcaster.EXPECT().PublishNewOffer(gomock.Any(), gomock.Any()).Times(0)

	result, err := s.ingest.Run(context.Background())

	s.Require().NoError(err)
	s.Equal(0, result.Inserted)
}

func (s *IngestCommandsTestSuite) TestRun_RemoteBeforeSupplementInOrder() {
	s.source.EXPECT().FetchAll(gomock.Any()).Return([]offer.RemoteRecord{
		{ID: "1", Category: ptr.Of("jewelery")},
		{ID: "2", Category: ptr.Of("toys")},
	}, nil)
	s.catalog.EXPECT().Records().Return([]offer.SupplementRecord{
		{ExternalID: "travel1", Price: 25999, Category: offer.CategoryTravel},
		{ExternalID: "food1", Price: 99, Category: offer.CategoryFood},
	})

	var order []string
	record := func(_ context.Context, _ sqlc.DBTX, o *offer.Offer) (bool, error) {
		order = append(order, o.Source().String()+"/"+o.ExternalID()+"/"+o.Category().String())
		o.MarkPersisted(int64(len(order)), time.Now())
		return true, nil
	}
	s.offers.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(record).Times(4)
	s.broadcaster.EXPECT().PublishNewOffer(gomock.Any(), gomock.Any()).Times(4)

	result, err := s.ingest.Run(context.Background())

	s.Require().NoError(err)
	s.Equal(4, result.Inserted)
	s.Equal([]string{
		"remote-api/1/Jewellery",
		"remote-api/2/Fashion",
		"static-supplement/travel1/Travel",
		"static-supplement/food1/Food",
	}, order)
}

func (s *IngestCommandsTestSuite) TestRun_SkipsRecordWithoutID() {
	s.source.EXPECT().FetchAll(gomock.Any()).Return([]offer.RemoteRecord{{ID: "", Title: ptr.Of("orphan")}, widget()}, nil)
	s.catalog.EXPECT().Records().Return(nil)
	s.offers.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(insertAs(1)).Times(1)
	s.broadcaster.EXPECT().PublishNewOffer(gomock.Any(), gomock.Any()).Times(1)

	result, err := s.ingest.Run(context.Background())

	s.Require().NoError(err)
	s.Equal(1, result.Inserted)
	s.Equal(1, result.Skipped)
}

func (s *IngestCommandsTestSuite) TestRun_UpstreamFailure() {
	s.source.EXPECT().FetchAll(gomock.Any()).Return(nil, errors.New("connection refused"))
	s.offers.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.broadcaster.EXPECT().PublishNewOffer(gomock.Any(), gomock.Any()).Times(0)

	result, err := s.ingest.Run(context.Background())

	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrUpstreamFetch))
	s.Equal(0, result.Inserted)
}

func (s *IngestCommandsTestSuite) TestRun_PersistenceFailureAborts() {
	s.source.EXPECT().FetchAll(gomock.Any()).Return([]offer.RemoteRecord{
		{ID: "1"}, {ID: "2"}, {ID: "3"},
	}, nil)
	dbErr := infra.WrapRepoErr("failed to insert offer", errors.New("disk full"), infra.KindDBFailure)

	gomock.InOrder(
		s.offers.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(insertAs(1)),
		s.offers.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, dbErr),
	)
	s.broadcaster.EXPECT().PublishNewOffer(gomock.Any(), gomock.Any()).Times(1)

	result, err := s.ingest.Run(context.Background())

	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrOfferPersist))
	s.True(infra.IsKind(err, infra.KindDBFailure))
	s.Equal(1, result.Inserted)
}

// memoryOffers mimics the unique (source, external_id) constraint.
type memoryOffers struct {
	rows map[string]int64
}

func (m *memoryOffers) InsertIfAbsent(_ context.Context, _ sqlc.DBTX, o *offer.Offer) (bool, error) {
	key := o.Source().String() + "|" + o.ExternalID()
	if _, ok := m.rows[key]; ok {
		return false, nil
	}
	id := int64(len(m.rows) + 1)
	m.rows[key] = id
	o.MarkPersisted(id, time.Now())
	return true, nil
}

func (m *memoryOffers) RemapCategory(context.Context, sqlc.DBTX, string, offer.Category) (int64, error) {
	return 0, nil
}

func (s *IngestCommandsTestSuite) TestRun_Idempotent() {
	store := &memoryOffers{rows: map[string]int64{}}
	ingest := commands.NewIngestCommands(s.uow, store, s.source, s.catalog, offer.NewDefaultNormalizer(), s.broadcaster)

	snapshot := []offer.RemoteRecord{widget(), {ID: "43", Category: ptr.Of("jewelery")}}
	s.source.EXPECT().FetchAll(gomock.Any()).Return(snapshot, nil).Times(2)
	s.catalog.EXPECT().Records().Return([]offer.SupplementRecord{
		{ExternalID: "42", Category: offer.CategoryFood},
	}).Times(2)
	s.broadcaster.EXPECT().PublishNewOffer(gomock.Any(), gomock.Any()).Times(3)

	first, err := ingest.Run(context.Background())
	s.Require().NoError(err)
	// same external id under a different source is a different offer
	s.Equal(3, first.Inserted)

	second, err := ingest.Run(context.Background())
	s.Require().NoError(err)
	s.Equal(0, second.Inserted)
	s.Len(store.rows, 3)
}
