package service

import (
	"context"
	"testing"

	"go-pos-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type layoutFixture struct {
	tabRepo  *fakeTabRepo
	cardRepo *fakeCardRepo
	itemRepo *fakeItemRepo
	svc      LayoutService
}

func newLayoutFixture(t *testing.T) *layoutFixture {
	t.Helper()
	f := &layoutFixture{
		tabRepo:  newFakeTabRepo(),
		cardRepo: newFakeCardRepo(),
		itemRepo: newFakeItemRepo(),
	}
	f.svc = NewLayoutService(f.tabRepo, f.cardRepo, f.itemRepo, fakeStore{}, nil)
	return f
}

func (f *layoutFixture) addTab(t *testing.T) *model.Tab {
	t.Helper()
	tab := &model.Tab{Name: "Drinks", Color: "#00AA00"}
	require.NoError(t, f.tabRepo.Create(context.Background(), tab))
	return tab
}

func (f *layoutFixture) addCard(t *testing.T, tabID primitive.ObjectID) *model.FormattedCard {
	t.Helper()
	card, err := f.svc.CreateCard(context.Background(), CreateCardInput{
		Name:       "Beers",
		Color:      "#FFCC00",
		Dimensions: model.Dimensions{X: 0, Y: 0, Width: 2, Height: 2},
		TabID:      tabID,
	})
	require.NoError(t, err)
	return card
}

func TestCreateCardAppendsToTab(t *testing.T) {
	f := newLayoutFixture(t)
	tab := f.addTab(t)

	card := f.addCard(t, tab.ID)
	assert.Equal(t, "Beers", card.Name)
	assert.Empty(t, card.Items)

	stored, err := f.tabRepo.FindByID(context.Background(), tab.ID)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{card.ID}, stored.Cards)
}

func TestCreateCardUnknownTab(t *testing.T) {
	f := newLayoutFixture(t)

	_, err := f.svc.CreateCard(context.Background(), CreateCardInput{Name: "Beers", TabID: primitive.NewObjectID()})
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 404, svcErr.Code)
	assert.Equal(t, "Tab not found", svcErr.Message)
}

func TestGetCardUnknown(t *testing.T) {
	f := newLayoutFixture(t)

	_, err := f.svc.GetCard(context.Background(), primitive.NewObjectID())
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 404, svcErr.Code)
	assert.Equal(t, "Card does not exist", svcErr.Message)
}

func TestGetAllCardsResolvesItems(t *testing.T) {
	f := newLayoutFixture(t)
	tab := f.addTab(t)
	card := f.addCard(t, tab.ID)

	cardID := card.ID
	item, err := f.svc.CreateItem(context.Background(), CreateItemInput{
		Name:   "Lager",
		Price:  4.5,
		Stock:  10,
		CardID: &cardID,
	})
	require.NoError(t, err)

	cards, err := f.svc.GetAllCards(context.Background(), tab.ID)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, card.ID, cards[0].ID)
	require.Len(t, cards[0].Items, 1)
	assert.Equal(t, item.ID, cards[0].Items[0].ID)
	assert.Equal(t, "Lager", cards[0].Items[0].Name)
	assert.Equal(t, 4.5, cards[0].Items[0].Price)
}

func TestGetAllCardsEmptyTab(t *testing.T) {
	f := newLayoutFixture(t)
	tab := f.addTab(t)

	_, err := f.svc.GetAllCards(context.Background(), tab.ID)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 404, svcErr.Code)
	assert.Equal(t, "Tab does not have cards", svcErr.Message)
}

func TestGetAllCardsUnknownTab(t *testing.T) {
	f := newLayoutFixture(t)

	_, err := f.svc.GetAllCards(context.Background(), primitive.NewObjectID())
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 404, svcErr.Code)
	assert.Equal(t, "Tab does not exist", svcErr.Message)
}

// A tab referencing a deleted card fails the whole call rather than
// returning partial results.
func TestGetAllCardsDanglingCard(t *testing.T) {
	f := newLayoutFixture(t)
	tab := f.addTab(t)
	card := f.addCard(t, tab.ID)
	require.NoError(t, f.cardRepo.Delete(context.Background(), card.ID))

	_, err := f.svc.GetAllCards(context.Background(), tab.ID)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 404, svcErr.Code)
	assert.Equal(t, "Card does not exist", svcErr.Message)
}

func TestGetAllCardsDanglingItem(t *testing.T) {
	f := newLayoutFixture(t)
	tab := f.addTab(t)
	card := f.addCard(t, tab.ID)
	require.NoError(t, f.cardRepo.AddItem(context.Background(), card.ID, primitive.NewObjectID()))

	_, err := f.svc.GetAllCards(context.Background(), tab.ID)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 404, svcErr.Code)
	assert.Equal(t, "Item does not exist", svcErr.Message)
}

func TestModifyPosition(t *testing.T) {
	f := newLayoutFixture(t)
	tab := f.addTab(t)
	card := f.addCard(t, tab.ID)

	dims := model.Dimensions{X: 3, Y: 1, Width: 4, Height: 2}
	require.NoError(t, f.svc.ModifyPosition(context.Background(), card.ID, dims, true))

	stored, err := f.cardRepo.FindByID(context.Background(), card.ID)
	require.NoError(t, err)
	assert.Equal(t, dims, stored.Dimensions)
	assert.True(t, stored.Static)
}

func TestUpdateCard(t *testing.T) {
	f := newLayoutFixture(t)
	tab := f.addTab(t)
	card := f.addCard(t, tab.ID)

	require.NoError(t, f.svc.UpdateCard(context.Background(), card.ID, "Wines", "#AA0000"))

	stored, err := f.cardRepo.FindByID(context.Background(), card.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wines", stored.Name)
	assert.Equal(t, "#AA0000", stored.Color)
}

func TestDeleteCardCascades(t *testing.T) {
	f := newLayoutFixture(t)
	tab := f.addTab(t)
	card := f.addCard(t, tab.ID)

	cardID := card.ID
	item, err := f.svc.CreateItem(context.Background(), CreateItemInput{Name: "Lager", Price: 4.5, CardID: &cardID})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteCard(context.Background(), card.ID, tab.ID))

	_, err = f.cardRepo.FindByID(context.Background(), card.ID)
	assert.Error(t, err)
	_, err = f.itemRepo.FindByID(context.Background(), item.ID)
	assert.Error(t, err)
	stored, err := f.tabRepo.FindByID(context.Background(), tab.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Cards)
}

func TestDeleteCardNotInTab(t *testing.T) {
	f := newLayoutFixture(t)
	tabA := f.addTab(t)
	tabB := f.addTab(t)
	card := f.addCard(t, tabA.ID)

	err := f.svc.DeleteCard(context.Background(), card.ID, tabB.ID)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 404, svcErr.Code)
	assert.Equal(t, "Card Not Found in Tab", svcErr.Message)

	// Nothing was deleted.
	_, err = f.cardRepo.FindByID(context.Background(), card.ID)
	assert.NoError(t, err)
}

func TestCreateAndGetAllTabs(t *testing.T) {
	f := newLayoutFixture(t)

	tab, err := f.svc.CreateTab(context.Background(), "Food", "#0000AA")
	require.NoError(t, err)
	assert.Equal(t, "Food", tab.Name)
	assert.Empty(t, tab.Cards)

	tabs, err := f.svc.GetAllTabs(context.Background())
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, tab.ID, tabs[0].ID)
}

func TestCreateItemWithoutCard(t *testing.T) {
	f := newLayoutFixture(t)

	item, err := f.svc.CreateItem(context.Background(), CreateItemInput{
		Name:  "Lager",
		Price: 4.5,
		Props: map[string]string{"size": "0.5l"},
		Stock: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lager", item.Name)
	assert.Equal(t, map[string]string{"size": "0.5l"}, item.Props)
}

func TestCreateItemUnknownCard(t *testing.T) {
	f := newLayoutFixture(t)
	missing := primitive.NewObjectID()

	_, err := f.svc.CreateItem(context.Background(), CreateItemInput{Name: "Lager", Price: 4.5, CardID: &missing})
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 404, svcErr.Code)
	assert.Equal(t, "Card does not exist", svcErr.Message)
}

func TestUpdateItem(t *testing.T) {
	f := newLayoutFixture(t)
	item, err := f.svc.CreateItem(context.Background(), CreateItemInput{Name: "Lager", Price: 4.5, Stock: 12})
	require.NoError(t, err)

	err = f.svc.UpdateItem(context.Background(), UpdateItemInput{
		ID:    item.ID,
		Name:  "Pilsner",
		Price: 5.0,
		Stock: 8,
	})
	require.NoError(t, err)

	stored, err := f.itemRepo.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pilsner", stored.Name)
	assert.Equal(t, 5.0, stored.Price)
	assert.Equal(t, 8, stored.Stock)

	err = f.svc.UpdateItem(context.Background(), UpdateItemInput{ID: primitive.NewObjectID(), Name: "Ghost"})
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 404, svcErr.Code)
}
