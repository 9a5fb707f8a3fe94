package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/internal/store"
	"github.com/MKhiriev/mesto-api/internal/validators"
	"github.com/MKhiriev/mesto-api/models"
)

type cardService struct {
	cardRepository store.CardRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewCardService(cardRepository store.CardRepository, logger *logger.Logger) CardService {
	return &cardService{
		cardRepository: cardRepository,
		validator:      validators.NewStructValidator(),
		logger:         logger,
	}
}

func (s *cardService) ListCards(ctx context.Context) ([]models.Card, error) {
	cards, err := s.cardRepository.ListCards(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cardService.ListCards").Msg("error listing cards")
		return nil, fmt.Errorf("error listing cards: %w", err)
	}

	return cards, nil
}

// CreateCard stores a card. card.Owner must be set to the caller.
func (s *cardService) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	log := logger.FromContext(ctx).With().Str("func", "*cardService.CreateCard").Logger()

	if err := s.validator.Validate(ctx, card); err != nil {
		log.Err(err).Str("owner", card.Owner).Msg("invalid card data provided")
		return models.Card{}, err
	}

	created, err := s.cardRepository.CreateCard(ctx, card)
	if err != nil {
		log.Err(err).Str("owner", card.Owner).Msg("error creating card")
		return models.Card{}, fmt.Errorf("error creating card: %w", fromStoreError(err))
	}

	return created, nil
}

// DeleteCard looks the card up, checks ownership and removes it. The card
// is returned as it was before deletion.
func (s *cardService) DeleteCard(ctx context.Context, cardID, userID string) (models.Card, error) {
	log := logger.FromContext(ctx).With().Str("func", "*cardService.DeleteCard").Str("card_id", cardID).Logger()

	if err := validators.ValidateID(cardID); err != nil {
		return models.Card{}, err
	}

	card, err := s.cardRepository.FindCardByID(ctx, cardID)
	if err != nil {
		log.Err(err).Msg("error finding card")
		return models.Card{}, fmt.Errorf("error finding card: %w", fromStoreError(err))
	}

	if !card.IsOwnedBy(userID) {
		log.Warn().Str("user_id", userID).Str("owner", card.Owner).Msg("attempt to delete a foreign card")
		return models.Card{}, ErrForbidden
	}

	// the card may have been removed since it was read
	if err = s.cardRepository.DeleteCard(ctx, cardID, userID); err != nil {
		log.Err(err).Msg("error deleting card")
		return models.Card{}, fmt.Errorf("error deleting card: %w", fromStoreError(err))
	}

	return card, nil
}

// LikeCard puts userID into the likes of the card. Repeated likes are no-ops.
func (s *cardService) LikeCard(ctx context.Context, cardID, userID string) (models.Card, error) {
	if err := validators.ValidateID(cardID); err != nil {
		return models.Card{}, err
	}

	card, err := s.cardRepository.AddLike(ctx, cardID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cardService.LikeCard").Str("card_id", cardID).Msg("error liking card")
		return models.Card{}, fmt.Errorf("error liking card: %w", fromStoreError(err))
	}

	return card, nil
}

// DislikeCard removes userID from the likes of the card. Removing an absent
// like is a no-op.
func (s *cardService) DislikeCard(ctx context.Context, cardID, userID string) (models.Card, error) {
	if err := validators.ValidateID(cardID); err != nil {
		return models.Card{}, err
	}

	card, err := s.cardRepository.RemoveLike(ctx, cardID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cardService.DislikeCard").Str("card_id", cardID).Msg("error disliking card")
		return models.Card{}, fmt.Errorf("error disliking card: %w", fromStoreError(err))
	}

	return card, nil
}
