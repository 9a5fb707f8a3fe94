package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/mesto-api/internal/logger"
	"github.com/MKhiriev/mesto-api/models"
)

// cardRepository is the SQL implementation of [CardRepository]. Cards live
// in the "cards" table, their likes in "card_likes" keyed by
// (card_id, user_id).
type cardRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

func NewCardRepository(db *DB, ids IDGenerator, logger *logger.Logger) CardRepository {
	logger.Debug().Msg("creating card repository")
	return &cardRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// ListCards returns every card in creation order with its likes.
func (r *cardRepository) ListCards(ctx context.Context) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCardsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.ListCards").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.ListCards").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.Card, 0)
	ids := make([]string, 0)
	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*cardRepository.ListCards").Msg("error scanning card")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		cards = append(cards, card)
		ids = append(ids, card.ID)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*cardRepository.ListCards").Msg("error iterating cards")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(cards) == 0 {
		return cards, nil
	}

	likes, err := r.loadLikes(ctx, r.db, ids...)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.ListCards").Msg("error loading likes")
		return nil, err
	}
	for i := range cards {
		cards[i].Likes = likesOf(likes, cards[i].ID)
	}

	return cards, nil
}

// CreateCard assigns the identity and creation time and inserts the card.
// An owner missing from the users table yields [ErrUserNotFound].
func (r *cardRepository) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	log := logger.FromContext(ctx)

	card.ID = r.ids.Generate()
	card.CreatedAt = nowUTC()
	card.Likes = []string{}

	query, args, err := buildInsertCardQuery(r.db.builder, card)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.CreateCard").Msg("error building query")
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*cardRepository.CreateCard").Msg("error inserting card")
		return models.Card{}, r.db.translateExecError(err, nil, ErrUserNotFound)
	}

	return card, nil
}

func (r *cardRepository) FindCardByID(ctx context.Context, id string) (models.Card, error) {
	log := logger.FromContext(ctx)

	card, err := r.getCard(ctx, r.db, id)
	if err != nil {
		if !errors.Is(err, ErrCardNotFound) {
			log.Err(err).Str("func", "*cardRepository.FindCardByID").Msg("error finding card")
		}
		return models.Card{}, err
	}

	likes, err := r.loadLikes(ctx, r.db, card.ID)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.FindCardByID").Msg("error loading likes")
		return models.Card{}, err
	}
	card.Likes = likesOf(likes, card.ID)

	return card, nil
}

// DeleteCard removes the card only when it belongs to ownerID. Its likes go
// with it through ON DELETE CASCADE.
func (r *cardRepository) DeleteCard(ctx context.Context, id, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCardQuery(r.db.builder, id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.DeleteCard").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.DeleteCard").Msg("error deleting card")
		return r.db.translateExecError(err, nil, nil)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.DeleteCard").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrCardNotFound
	}

	return nil
}

// AddLike inserts the like with ON CONFLICT DO NOTHING, so repeating it
// leaves the set unchanged.
func (r *cardRepository) AddLike(ctx context.Context, cardID, userID string) (models.Card, error) {
	return r.changeLikes(ctx, "*cardRepository.AddLike", cardID, func(tx *sql.Tx) error {
		query, args, err := buildInsertLikeQuery(r.db.builder, cardID, userID, nowUTC())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return r.db.translateExecError(err, nil, ErrUserNotFound)
		}
		return nil
	})
}

// RemoveLike deletes the like if present.
func (r *cardRepository) RemoveLike(ctx context.Context, cardID, userID string) (models.Card, error) {
	return r.changeLikes(ctx, "*cardRepository.RemoveLike", cardID, func(tx *sql.Tx) error {
		query, args, err := buildDeleteLikeQuery(r.db.builder, cardID, userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return r.db.translateExecError(err, nil, nil)
		}
		return nil
	})
}

// changeLikes runs change inside a transaction that first makes sure the
// card exists and afterwards reads its new likes set.
func (r *cardRepository) changeLikes(ctx context.Context, funcName, cardID string, change func(tx *sql.Tx) error) (models.Card, error) {
	log := logger.FromContext(ctx).With().Str("func", funcName).Logger()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return models.Card{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	card, err := r.getCard(ctx, tx, cardID)
	if err != nil {
		if !errors.Is(err, ErrCardNotFound) {
			log.Err(err).Msg("error finding card")
		}
		return models.Card{}, err
	}

	if err = change(tx); err != nil {
		log.Err(err).Msg("error changing likes")
		return models.Card{}, err
	}

	likes, err := r.loadLikes(ctx, tx, cardID)
	if err != nil {
		log.Err(err).Msg("error loading likes")
		return models.Card{}, err
	}
	card.Likes = likesOf(likes, cardID)

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return models.Card{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return card, nil
}

// getCard reads a card row without its likes.
func (r *cardRepository) getCard(ctx context.Context, q querier, id string) (models.Card, error) {
	query, args, err := buildSelectCardByIDQuery(r.db.builder, id)
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := q.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	card, err := scanCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Card{}, ErrCardNotFound
	}
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return card, nil
}

// loadLikes returns the likes of the given cards keyed by card identity.
func (r *cardRepository) loadLikes(ctx context.Context, q querier, cardIDs ...string) (map[string][]string, error) {
	query, args, err := buildSelectLikesQuery(r.db.builder, cardIDs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	likes := make(map[string][]string, len(cardIDs))
	for rows.Next() {
		var cardID, userID string
		if err = rows.Scan(&cardID, &userID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		likes[cardID] = append(likes[cardID], userID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return likes, nil
}

func scanCard(row rowScanner) (models.Card, error) {
	var card models.Card
	err := row.Scan(&card.ID, &card.Name, &card.Link, &card.Owner, &card.CreatedAt)
	return card, err
}

// likesOf never returns nil so that likes serialize as [].
func likesOf(likes map[string][]string, cardID string) []string {
	if l, ok := likes[cardID]; ok {
		return l
	}
	return []string{}
}
