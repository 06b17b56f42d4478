package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
)

// sqlUserRepository is the SQL implementation of [UserRepository] shared by
// PostgreSQL and SQLite. It handles account creation and lookup against the
// "users" table.
type sqlUserRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLUserRepository constructs a [UserRepository] backed by db.
func NewSQLUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating sql user repository")
	return &sqlUserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sqlUserRepository) GetCreators(ctx context.Context) ([]models.Creator, error) {
	query := r.db.builder.Select(creatorColumns...).From(usersTable).OrderBy("id")

	creators, err := selectAll(ctx, r.db, query, scanCreator)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlUserRepository.GetCreators").Msg("error selecting creators")
		return nil, err
	}

	return creators, nil
}

func (r *sqlUserRepository) GetCreatorsByNickname(ctx context.Context, nickname string) ([]models.Creator, error) {
	query := r.db.builder.Select(creatorColumns...).
		From(usersTable).
		Where(r.db.contains("nickname", nickname)).
		OrderBy("id")

	creators, err := selectAll(ctx, r.db, query, scanCreator)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sqlUserRepository.GetCreatorsByNickname").
			Str("nickname", nickname).
			Msg("error selecting creators by nickname")
		return nil, err
	}

	return creators, nil
}

func (r *sqlUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}

	query := r.db.builder.Select(userColumns...).From(usersTable).Where(sq.Eq{"id": oid.Hex()})

	user, err := selectOne(ctx, r.db, query, scanUser)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlUserRepository.GetUserByID").Str("id", id).Msg("error selecting user")
		return nil, err
	}

	return user, nil
}

func (r *sqlUserRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	query := r.db.builder.Select(userColumns...).From(usersTable).Where(sq.Eq{"login": login})

	user, err := selectOne(ctx, r.db, query, scanUser)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlUserRepository.GetUserByLogin").Str("login", login).Msg("error selecting user")
		return nil, err
	}

	return user, nil
}

// InsertUser checks the login first and relies on the UNIQUE constraint for
// concurrent registrations.
func (r *sqlUserRepository) InsertUser(ctx context.Context, user models.User) (bool, error) {
	log := logger.FromContext(ctx)

	taken, err := r.db.exists(ctx, usersTable, sq.Eq{"login": user.Login})
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.InsertUser").Msg("error checking login")
		return false, err
	}
	if taken {
		log.Debug().Str("func", "*sqlUserRepository.InsertUser").Str("login", user.Login).Msg("login already exists")
		return false, nil
	}

	prepareNewUser(&user, time.Now())

	insert := r.db.builder.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID.Hex(), user.Login, user.Nickname, user.ImageURL, user.Password, user.Salt)

	inserted, err := r.db.insertIfAbsent(ctx, insert)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.InsertUser").Msg("error inserting user")
		return false, err
	}

	return inserted, nil
}

func (r *sqlUserRepository) UpdateUserProfile(ctx context.Context, id string, update models.ProfileUpdate) (bool, error) {
	oid, ok := objectID(id)
	if !ok || update.IsEmpty() {
		return false, nil
	}

	set := sq.Eq{}
	if update.Nickname != nil {
		set["nickname"] = *update.Nickname
	}
	if update.ImageURL != nil {
		set["image_url"] = *update.ImageURL
	}

	query := r.db.builder.Update(usersTable).SetMap(set).Where(sq.Eq{"id": oid.Hex()})

	affected, err := r.db.execAffected(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlUserRepository.UpdateUserProfile").Str("id", id).Msg("error updating profile")
		return false, err
	}

	return affected > 0, nil
}
