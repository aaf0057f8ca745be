package service

import (
	"Orion/internal/model"
	"Orion/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 只覆盖活动流用到的列表方法，其余方法走内嵌接口（调用即 panic，等于断言没被用到）

type activityPostRepo struct {
	repository.PostRepo
	posts []*model.Post
}

func (f *activityPostRepo) ListPostsByUser(_ context.Context, _ uint64) ([]*model.Post, error) {
	return f.posts, nil
}

type activityPostActionRepo struct {
	repository.PostActionRepo
	comments []*model.PostComment
	likes    []*model.PostLike
}

func (f *activityPostActionRepo) ListCommentsByUser(_ context.Context, _ uint64) ([]*model.PostComment, error) {
	return f.comments, nil
}

func (f *activityPostActionRepo) ListLikesByUser(_ context.Context, _ uint64) ([]*model.PostLike, error) {
	return f.likes, nil
}

type activitySessionRepo struct {
	repository.SessionRepo
	sessions []*model.Session
}

func (f *activitySessionRepo) ListSessionsByUser(_ context.Context, _ uint64) ([]*model.Session, error) {
	return f.sessions, nil
}

type activityNeedRepo struct {
	repository.NeedRepo
	needs []*model.Need
}

func (f *activityNeedRepo) ListNeedsByUser(_ context.Context, _ uint64) ([]*model.Need, error) {
	return f.needs, nil
}

// 五路来源合成一条按时间倒序的流，点赞以被赞的帖子呈现
func TestUserActivitiesMergedDesc(t *testing.T) {
	at := func(h int) time.Time {
		return time.Date(2025, 6, 1, h, 0, 0, 0, time.UTC)
	}
	svc := NewUserActivityService(
		&activityPostRepo{posts: []*model.Post{{ID: 1, Text: "发了个帖", CreatedAt: at(10)}}},
		&activityPostActionRepo{
			comments: []*model.PostComment{{ID: 2, PostID: 9, Text: "不错", CreatedAt: at(12)}},
			likes: []*model.PostLike{{
				ID:        3,
				CreatedAt: at(11),
				Post:      model.Post{ID: 9, Text: "被赞的帖子"},
			}},
		},
		&activitySessionRepo{sessions: []*model.Session{{ID: 4, Title: "路演", CreatedAt: at(14)}}},
		&activityNeedRepo{needs: []*model.Need{{ID: 5, Title: "找合伙人", CreatedAt: at(13)}}},
	)

	list, err := svc.GetUserActivities(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list.Activities, 5)

	types := make([]string, 0, len(list.Activities))
	for i, a := range list.Activities {
		types = append(types, a.Type)
		if i > 0 {
			assert.False(t, a.CreatedAt.After(list.Activities[i-1].CreatedAt))
		}
	}
	assert.Equal(t, []string{ActivitySession, ActivityNeed, ActivityComment, ActivityLike, ActivityPost}, types)

	// 点赞活动携带的是被赞帖子的内容
	like := list.Activities[3]
	require.NotNil(t, like.Post)
	assert.Equal(t, uint64(9), like.Post.ID)
	assert.Equal(t, "被赞的帖子", like.Post.Text)
}

func TestUserActivitiesEmpty(t *testing.T) {
	svc := NewUserActivityService(
		&activityPostRepo{},
		&activityPostActionRepo{},
		&activitySessionRepo{},
		&activityNeedRepo{},
	)

	list, err := svc.GetUserActivities(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, list.Activities)
}
