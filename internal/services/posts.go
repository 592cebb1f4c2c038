package services

import "protrain-backend-go/internal/models"

// CreatePost publishes content straight to the feed as approved, with the
// author fields copied from user.
func (s Service) CreatePost(c models.Collections, user *models.User, content string) (models.Collections, models.Post) {
	if user == nil {
		return c, models.Post{}
	}
	post := models.Post{
		ID:        s.newID(),
		UserID:    user.ID,
		UserName:  user.Name,
		UserPhoto: user.PhotoURL,
		Content:   content,
		Likes:     []string{},
		Comments:  []models.Comment{},
		Status:    models.PostApproved,
		Timestamp: s.now(),
	}
	c.Posts = prependCopy(c.Posts, post)
	return c, post
}

// ToggleLike flips the membership of user in the post's like set.
func (s Service) ToggleLike(c models.Collections, user *models.User, postID string) models.Collections {
	if user == nil {
		return c
	}
	return updatePost(c, postID, func(p *models.Post) {
		if p.LikedBy(user.ID) {
			kept := make([]string, 0, len(p.Likes))
			for _, id := range p.Likes {
				if id != user.ID {
					kept = append(kept, id)
				}
			}
			p.Likes = kept
			return
		}
		p.Likes = appendCopy(p.Likes, user.ID)
	})
}

func (s Service) AddComment(c models.Collections, user *models.User, postID, text string) models.Collections {
	if user == nil {
		return c
	}
	if _, ok := FindPost(c, postID); !ok {
		return c
	}
	comment := models.Comment{
		ID:        s.newID(),
		UserID:    user.ID,
		UserName:  user.Name,
		Text:      text,
		Timestamp: s.now(),
	}
	return updatePost(c, postID, func(p *models.Post) {
		p.Comments = appendCopy(p.Comments, comment)
	})
}

func (s Service) ApprovePost(c models.Collections, postID string) models.Collections {
	return updatePost(c, postID, func(p *models.Post) {
		p.Status = models.PostApproved
	})
}

// RejectPost drops the post; rejected posts are never kept around.
func (s Service) RejectPost(c models.Collections, postID string) models.Collections {
	if _, ok := FindPost(c, postID); !ok {
		return c
	}
	kept := make([]models.Post, 0, len(c.Posts))
	for _, p := range c.Posts {
		if p.ID != postID {
			kept = append(kept, p)
		}
	}
	c.Posts = kept
	return c
}

func updatePost(c models.Collections, postID string, fn func(*models.Post)) models.Collections {
	idx := -1
	for i := range c.Posts {
		if c.Posts[i].ID == postID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return c
	}
	posts := append([]models.Post{}, c.Posts...)
	updated := posts[idx].Clone()
	fn(&updated)
	posts[idx] = updated
	c.Posts = posts
	return c
}
