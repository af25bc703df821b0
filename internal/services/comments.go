package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/trumanharry/record-nexus-connect/internal/db"
	"github.com/trumanharry/record-nexus-connect/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrEmptyContent    = errors.New("comment cannot be empty")
	ErrCommentNotFound = errors.New("comment not found")
	ErrRecordNotFound  = errors.New("record not found")
)

type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// AddComment persists a new comment and credits the author. The ledger credit
// happens after the insert commits; a failed credit leaves the comment in
// place and is only logged.
func AddComment(authorID uint, content, recordType, recordUID string, parentID *uint) (*models.Comment, error) {
	if authorID == 0 {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	comment := models.Comment{
		Uid:        uuid.NewString(),
		RecordUID:  recordUID,
		RecordType: recordType,
		UserID:     authorID,
		ParentID:   parentID,
		Content:    content,
		Upvotes:    models.IDList{},
		Downvotes:  models.IDList{},
		Score:      0,
		ModifiedBy: authorID,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		return nil, err
	}

	CreditPointsAsync(authorID, PointsAddComment, ReasonAddComment)

	go NotifyFollowers(authorID, recordUID, recordType, models.NotificationTypeComment,
		fmt.Sprintf("New comment on a %s record you follow", recordType))

	return &comment, nil
}

// CastVote applies one voter action to a comment. Casting the same direction
// twice toggles the vote off; casting the opposite direction swaps it in a
// single step (which is why a swap moves the score by 2). The read-modify-write
// runs under a row lock so concurrent voters cannot clobber each other's
// set membership.
func CastVote(voterID uint, commentUID string, direction VoteDirection) (*models.Comment, error) {
	if voterID == 0 {
		return nil, ErrUnauthenticated
	}

	var comment models.Comment
	var delta int

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("uid = ?", commentUID).First(&comment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommentNotFound
			}
			return err
		}

		upvotes, downvotes, pointChange := applyVote(comment.Upvotes, comment.Downvotes, voterID, direction)
		delta = pointChange

		comment.Upvotes = upvotes
		comment.Downvotes = downvotes
		// Derive the score from the sets rather than accumulating a counter
		comment.Score = len(upvotes) - len(downvotes)
		comment.ModifiedBy = voterID

		return tx.Model(&models.Comment{}).Where("id = ?", comment.ID).
			Updates(map[string]interface{}{
				"upvotes":     upvotes,
				"downvotes":   downvotes,
				"score":       comment.Score,
				"modified_by": voterID,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	if credit, ok := voteCredit(comment.UserID, voterID, delta); ok {
		reason := ReasonUpvoteReceived
		if direction == VoteDown {
			reason = ReasonDownvoteReceived
		}
		if err := CreditPoints(comment.UserID, credit, reason); err != nil {
			log.Printf("Failed to credit vote points for user %d: %v", comment.UserID, err)
		}
	}

	return &comment, nil
}

// voteCredit decides whether a cast owes the comment author a ledger entry.
// Self-votes move the score but never the author's balance, and a zero delta
// has nothing to record.
func voteCredit(authorID, voterID uint, delta int) (int, bool) {
	if authorID == voterID || delta == 0 {
		return 0, false
	}
	return delta, true
}

// applyVote computes the new vote sets for a single cast and the signed point
// delta owed to the comment author. A user id appears in at most one of the
// two sets afterwards.
func applyVote(upvotes, downvotes models.IDList, voterID uint, direction VoteDirection) (models.IDList, models.IDList, int) {
	hasUpvoted := upvotes.Contains(voterID)
	hasDownvoted := downvotes.Contains(voterID)

	newUpvotes := append(models.IDList{}, upvotes...)
	newDownvotes := append(models.IDList{}, downvotes...)
	pointChange := 0

	if direction == VoteUp {
		if hasUpvoted {
			// Toggle off
			newUpvotes = newUpvotes.Without(voterID)
			pointChange = -1
		} else {
			newUpvotes = append(newUpvotes, voterID)
			pointChange = 1
			if hasDownvoted {
				// Swap: removing the downvote is worth another +1
				newDownvotes = newDownvotes.Without(voterID)
				pointChange++
			}
		}
	} else {
		if hasDownvoted {
			newDownvotes = newDownvotes.Without(voterID)
			pointChange = 1
		} else {
			newDownvotes = append(newDownvotes, voterID)
			pointChange = -1
			if hasUpvoted {
				newUpvotes = newUpvotes.Without(voterID)
				pointChange--
			}
		}
	}

	return newUpvotes, newDownvotes, pointChange
}

// CommentThread is a one-level view of a record's discussion: root comments
// plus the direct replies of each root. Replies to replies are not surfaced.
type CommentThread struct {
	Roots           []models.Comment          `json:"roots"`
	RepliesByParent map[uint][]models.Comment `json:"replies_by_parent"`
}

// GroupComments partitions comments into roots and direct replies, preserving
// the order they were supplied in.
func GroupComments(comments []models.Comment) CommentThread {
	roots := make([]models.Comment, 0)
	rootIDs := make(map[uint]bool)
	for _, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, c)
			rootIDs[c.ID] = true
		}
	}

	replies := make(map[uint][]models.Comment)
	for _, c := range comments {
		if c.ParentID != nil && rootIDs[*c.ParentID] {
			replies[*c.ParentID] = append(replies[*c.ParentID], c)
		}
	}

	return CommentThread{Roots: roots, RepliesByParent: replies}
}
