package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/mesto-api/models"
)

const (
	usersTable     = "users"
	cardsTable     = "cards"
	cardLikesTable = "card_likes"
)

// publicUserColumns are the columns of the public shape of a user.
var publicUserColumns = []string{"id", "name", "about", "avatar", "email", "created_at"}

var cardColumns = []string{"id", "name", "link", "owner_id", "created_at"}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("id", "name", "about", "avatar", "email", "password", "created_at").
		Values(user.ID, user.Name, user.About, user.Avatar, user.Email, user.Password, user.CreatedAt).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(publicUserColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(append(publicUserColumns, "password")...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(publicUserColumns...).
		From(usersTable).
		OrderBy("created_at", "id").
		ToSql()
}

// buildUpdateUserQuery sets only the non-nil fields of update.
func buildUpdateUserQuery(b sq.StatementBuilderType, update models.UserUpdate) (string, []any, error) {
	query := b.Update(usersTable)

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.About != nil {
		query = query.Set("about", *update.About)
	}
	if update.Avatar != nil {
		query = query.Set("avatar", *update.Avatar)
	}

	return query.Where(sq.Eq{"id": update.ID}).ToSql()
}

func buildInsertCardQuery(b sq.StatementBuilderType, card models.Card) (string, []any, error) {
	return b.Insert(cardsTable).
		Columns(cardColumns...).
		Values(card.ID, card.Name, card.Link, card.Owner, card.CreatedAt).
		ToSql()
}

func buildSelectCardsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(cardColumns...).
		From(cardsTable).
		OrderBy("created_at", "id").
		ToSql()
}

func buildSelectCardByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(cardColumns...).
		From(cardsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteCardQuery(b sq.StatementBuilderType, id, ownerID string) (string, []any, error) {
	return b.Delete(cardsTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

// buildSelectLikesQuery selects the likes of every card in cardIDs in the
// order they were given.
func buildSelectLikesQuery(b sq.StatementBuilderType, cardIDs ...string) (string, []any, error) {
	return b.Select("card_id", "user_id").
		From(cardLikesTable).
		Where(sq.Eq{"card_id": cardIDs}).
		OrderBy("liked_at", "user_id").
		ToSql()
}

// buildInsertLikeQuery relies on the (card_id, user_id) primary key to keep
// likes a set.
func buildInsertLikeQuery(b sq.StatementBuilderType, cardID, userID string, likedAt any) (string, []any, error) {
	return b.Insert(cardLikesTable).
		Columns("card_id", "user_id", "liked_at").
		Values(cardID, userID, likedAt).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}

func buildDeleteLikeQuery(b sq.StatementBuilderType, cardID, userID string) (string, []any, error) {
	return b.Delete(cardLikesTable).
		Where(sq.Eq{"card_id": cardID, "user_id": userID}).
		ToSql()
}
