package service

import (
	"context"
	"encoding/json"
	"errors"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LayoutService manages the selling surface: tabs, the cards placed on them,
// and the items a card sells.
type LayoutService interface {
	GetCard(ctx context.Context, id primitive.ObjectID) (*model.FormattedCard, error)
	GetAllCards(ctx context.Context, tabID primitive.ObjectID) ([]model.CardWithItems, error)
	CreateCard(ctx context.Context, input CreateCardInput) (*model.FormattedCard, error)
	ModifyPosition(ctx context.Context, cardID primitive.ObjectID, dims model.Dimensions, static bool) error
	UpdateCard(ctx context.Context, cardID primitive.ObjectID, name, color string) error
	DeleteCard(ctx context.Context, cardID, tabID primitive.ObjectID) error

	CreateTab(ctx context.Context, name, color string) (*model.FormattedTab, error)
	GetAllTabs(ctx context.Context) ([]model.FormattedTab, error)

	CreateItem(ctx context.Context, input CreateItemInput) (*model.FormattedItem, error)
	UpdateItem(ctx context.Context, input UpdateItemInput) error
}

type CreateCardInput struct {
	Name       string
	Color      string
	Dimensions model.Dimensions
	Static     bool
	TabID      primitive.ObjectID
}

type CreateItemInput struct {
	Name   string
	Price  float64
	Image  string
	Props  map[string]string
	Stock  int
	CardID *primitive.ObjectID
}

type UpdateItemInput struct {
	ID    primitive.ObjectID
	Name  string
	Price float64
	Image string
	Props map[string]string
	Stock int
}

type layoutService struct {
	tabRepo  repository.TabRepository
	cardRepo repository.CardRepository
	itemRepo repository.ItemRepository
	store    repository.Store
	wsHub    *ws.Hub
}

func NewLayoutService(tabRepo repository.TabRepository, cardRepo repository.CardRepository, itemRepo repository.ItemRepository, store repository.Store, hub *ws.Hub) LayoutService {
	return &layoutService{
		tabRepo:  tabRepo,
		cardRepo: cardRepo,
		itemRepo: itemRepo,
		store:    store,
		wsHub:    hub,
	}
}

func (s *layoutService) GetCard(ctx context.Context, id primitive.ObjectID) (*model.FormattedCard, error) {
	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Card does not exist")
		}
		return nil, Internal("Internal Server Error")
	}
	formatted := card.ToFormatted()
	return &formatted, nil
}

// GetAllCards resolves a tab into its cards and each card into its items.
// Any dangling reference fails the whole call; no partial results.
func (s *layoutService) GetAllCards(ctx context.Context, tabID primitive.ObjectID) ([]model.CardWithItems, error) {
	tab, err := s.tabRepo.FindByID(ctx, tabID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Tab does not exist")
		}
		return nil, Internal("Internal Server Error")
	}
	if len(tab.Cards) == 0 {
		return nil, NotFound("Tab does not have cards")
	}

	cards := make([]model.CardWithItems, 0, len(tab.Cards))
	for _, cardID := range tab.Cards {
		card, err := s.cardRepo.FindByID(ctx, cardID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, NotFound("Card does not exist")
			}
			return nil, Internal("Internal Server Error")
		}

		items := make([]model.FormattedItem, 0, len(card.Items))
		for _, itemID := range card.Items {
			item, err := s.itemRepo.FindByID(ctx, itemID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return nil, NotFound("Item does not exist")
				}
				return nil, Internal("Internal Server Error")
			}
			items = append(items, item.ToFormatted())
		}

		cards = append(cards, model.CardWithItems{
			ID:         card.ID,
			Name:       card.Name,
			Color:      card.Color,
			Dimensions: card.Dimensions,
			Items:      items,
			Static:     card.Static,
		})
	}
	return cards, nil
}

func (s *layoutService) CreateCard(ctx context.Context, input CreateCardInput) (*model.FormattedCard, error) {
	if _, err := s.tabRepo.FindByID(ctx, input.TabID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Tab not found")
		}
		return nil, Internal("Internal Server Error")
	}

	card := &model.Card{
		Name:       input.Name,
		Color:      input.Color,
		Dimensions: input.Dimensions,
		Items:      []primitive.ObjectID{},
		Static:     input.Static,
	}

	err := s.store.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.cardRepo.Create(ctx, card); err != nil {
			return err
		}
		return s.tabRepo.AddCard(ctx, input.TabID, card.ID)
	})
	if err != nil {
		return nil, Internal("Internal Server Error")
	}

	s.broadcastLayout("card_created", card.ID)
	formatted := card.ToFormatted()
	return &formatted, nil
}

func (s *layoutService) ModifyPosition(ctx context.Context, cardID primitive.ObjectID, dims model.Dimensions, static bool) error {
	if _, err := s.cardRepo.FindByID(ctx, cardID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("Card does not exist")
		}
		return Internal("Internal Server Error")
	}
	if err := s.cardRepo.UpdatePosition(ctx, cardID, dims, static); err != nil {
		return Internal("Internal Server Error")
	}
	s.broadcastLayout("card_moved", cardID)
	return nil
}

func (s *layoutService) UpdateCard(ctx context.Context, cardID primitive.ObjectID, name, color string) error {
	if _, err := s.cardRepo.FindByID(ctx, cardID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("Card does not exist")
		}
		return Internal("Internal Server Error")
	}
	if err := s.cardRepo.UpdateNameColor(ctx, cardID, name, color); err != nil {
		return Internal("Internal Server Error")
	}
	s.broadcastLayout("card_updated", cardID)
	return nil
}

// DeleteCard removes the card, its items, and the tab's reference to it in
// one transaction; a failed tab update rolls the whole delete back.
func (s *layoutService) DeleteCard(ctx context.Context, cardID, tabID primitive.ObjectID) error {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("Card not found")
		}
		return Internal("Internal Server Error")
	}

	tab, err := s.tabRepo.FindByID(ctx, tabID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("Tab not found")
		}
		return Internal("Internal Server Error")
	}

	inTab := false
	for _, id := range tab.Cards {
		if id == cardID {
			inTab = true
			break
		}
	}
	if !inTab {
		return NotFound("Card Not Found in Tab")
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.itemRepo.DeleteByIDs(ctx, card.Items); err != nil {
			return err
		}
		if err := s.cardRepo.Delete(ctx, cardID); err != nil {
			return err
		}
		return s.tabRepo.RemoveCard(ctx, tabID, cardID)
	})
	if err != nil {
		return Internal("Internal Server Error")
	}

	s.broadcastLayout("card_deleted", cardID)
	return nil
}

func (s *layoutService) CreateTab(ctx context.Context, name, color string) (*model.FormattedTab, error) {
	tab := &model.Tab{Name: name, Color: color, Cards: []primitive.ObjectID{}}
	if err := s.tabRepo.Create(ctx, tab); err != nil {
		return nil, Internal("Internal Server Error")
	}
	formatted := tab.ToFormatted()
	return &formatted, nil
}

func (s *layoutService) GetAllTabs(ctx context.Context) ([]model.FormattedTab, error) {
	tabs, err := s.tabRepo.FindAll(ctx)
	if err != nil {
		return nil, Internal("Internal Server Error")
	}
	formatted := make([]model.FormattedTab, 0, len(tabs))
	for i := range tabs {
		formatted = append(formatted, tabs[i].ToFormatted())
	}
	return formatted, nil
}

func (s *layoutService) CreateItem(ctx context.Context, input CreateItemInput) (*model.FormattedItem, error) {
	if input.CardID != nil {
		if _, err := s.cardRepo.FindByID(ctx, *input.CardID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, NotFound("Card does not exist")
			}
			return nil, Internal("Internal Server Error")
		}
	}

	item := &model.Item{
		Name:  input.Name,
		Price: input.Price,
		Image: input.Image,
		Props: input.Props,
		Stock: input.Stock,
	}

	err := s.store.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.itemRepo.Create(ctx, item); err != nil {
			return err
		}
		if input.CardID != nil {
			return s.cardRepo.AddItem(ctx, *input.CardID, item.ID)
		}
		return nil
	})
	if err != nil {
		return nil, Internal("Internal Server Error")
	}

	formatted := item.ToFormatted()
	return &formatted, nil
}

func (s *layoutService) UpdateItem(ctx context.Context, input UpdateItemInput) error {
	item, err := s.itemRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("Item does not exist")
		}
		return Internal("Internal Server Error")
	}

	item.Name = input.Name
	item.Price = input.Price
	item.Image = input.Image
	item.Props = input.Props
	item.Stock = input.Stock

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return Internal("Internal Server Error")
	}
	return nil
}

func (s *layoutService) broadcastLayout(action string, cardID primitive.ObjectID) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "layout_changed",
			"action": action,
			"cardId": cardID.Hex(),
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
