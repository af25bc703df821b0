package services

import (
	"testing"

	"github.com/trumanharry/record-nexus-connect/internal/models"
)

func TestApplyVoteFirstUpvote(t *testing.T) {
	up, down, delta := applyVote(models.IDList{}, models.IDList{}, 7, VoteUp)
	if !up.Contains(7) {
		t.Error("Expected voter in upvotes")
	}
	if down.Contains(7) {
		t.Error("Voter should not be in downvotes")
	}
	if delta != 1 {
		t.Errorf("Expected delta 1, got %d", delta)
	}
}

func TestApplyVoteFirstDownvote(t *testing.T) {
	up, down, delta := applyVote(models.IDList{}, models.IDList{}, 7, VoteDown)
	if up.Contains(7) {
		t.Error("Voter should not be in upvotes")
	}
	if !down.Contains(7) {
		t.Error("Expected voter in downvotes")
	}
	if delta != -1 {
		t.Errorf("Expected delta -1, got %d", delta)
	}
}

func TestApplyVoteToggleOff(t *testing.T) {
	// Upvoting twice removes the vote entirely
	up, down, delta := applyVote(models.IDList{7}, models.IDList{}, 7, VoteUp)
	if up.Contains(7) || down.Contains(7) {
		t.Error("Toggled-off voter should be in neither set")
	}
	if delta != -1 {
		t.Errorf("Expected delta -1, got %d", delta)
	}

	up, down, delta = applyVote(models.IDList{}, models.IDList{7}, 7, VoteDown)
	if up.Contains(7) || down.Contains(7) {
		t.Error("Toggled-off voter should be in neither set")
	}
	if delta != 1 {
		t.Errorf("Expected delta 1, got %d", delta)
	}
}

func TestApplyVoteSwap(t *testing.T) {
	// Down then up moves the voter across in one step, worth 2 points
	up, down, delta := applyVote(models.IDList{}, models.IDList{7}, 7, VoteUp)
	if !up.Contains(7) {
		t.Error("Expected voter in upvotes after swap")
	}
	if down.Contains(7) {
		t.Error("Voter should have left downvotes after swap")
	}
	if delta != 2 {
		t.Errorf("Expected delta 2, got %d", delta)
	}

	up, down, delta = applyVote(models.IDList{7}, models.IDList{}, 7, VoteDown)
	if up.Contains(7) {
		t.Error("Voter should have left upvotes after swap")
	}
	if !down.Contains(7) {
		t.Error("Expected voter in downvotes after swap")
	}
	if delta != -2 {
		t.Errorf("Expected delta -2, got %d", delta)
	}
}

func TestApplyVotePreservesOtherVoters(t *testing.T) {
	up, down, _ := applyVote(models.IDList{1, 2}, models.IDList{3}, 2, VoteUp)
	if !up.Contains(1) {
		t.Error("Unrelated upvoter was dropped")
	}
	if !down.Contains(3) {
		t.Error("Unrelated downvoter was dropped")
	}
	if up.Contains(2) {
		t.Error("Voter 2's toggle-off did not remove them")
	}
}

func TestApplyVoteDoesNotMutateInputs(t *testing.T) {
	up := models.IDList{1, 2}
	down := models.IDList{3}
	applyVote(up, down, 2, VoteUp)
	if len(up) != 2 || len(down) != 1 {
		t.Error("applyVote mutated its inputs")
	}
}

func TestApplyVoteMutualExclusion(t *testing.T) {
	// Whatever sequence of casts happens, a voter never ends up in both sets
	up := models.IDList{}
	down := models.IDList{}
	sequence := []VoteDirection{VoteUp, VoteDown, VoteDown, VoteUp, VoteUp, VoteDown}
	for i, dir := range sequence {
		up, down, _ = applyVote(up, down, 9, dir)
		if up.Contains(9) && down.Contains(9) {
			t.Fatalf("Voter in both sets after cast %d", i)
		}
	}
}

func TestApplyVoteToggleRoundTrip(t *testing.T) {
	// A cast followed by the same cast restores the original sets and the
	// deltas cancel out
	up := models.IDList{1}
	down := models.IDList{2}
	up2, down2, d1 := applyVote(up, down, 5, VoteDown)
	up3, down3, d2 := applyVote(up2, down2, 5, VoteDown)
	if d1+d2 != 0 {
		t.Errorf("Expected deltas to cancel, got %d and %d", d1, d2)
	}
	if len(up3) != 1 || !up3.Contains(1) || len(down3) != 1 || !down3.Contains(2) {
		t.Error("Toggle round trip did not restore the original sets")
	}
}

func TestVoteScenarioScoreAndDeltas(t *testing.T) {
	// A fresh comment gets: A upvotes, B upvotes, C downvotes, then B swaps
	// to a downvote. Score must track len(up)-len(down) at every step.
	up := models.IDList{}
	down := models.IDList{}
	var delta int

	up, down, delta = applyVote(up, down, 1, VoteUp)
	if score := len(up) - len(down); score != 1 || delta != 1 {
		t.Fatalf("After A's upvote: score %d delta %d", score, delta)
	}
	up, down, delta = applyVote(up, down, 2, VoteUp)
	if score := len(up) - len(down); score != 2 || delta != 1 {
		t.Fatalf("After B's upvote: score %d delta %d", score, delta)
	}
	up, down, delta = applyVote(up, down, 3, VoteDown)
	if score := len(up) - len(down); score != 1 || delta != -1 {
		t.Fatalf("After C's downvote: score %d delta %d", score, delta)
	}
	up, down, delta = applyVote(up, down, 2, VoteDown)
	if score := len(up) - len(down); score != -1 || delta != -2 {
		t.Fatalf("After B's swap: score %d delta %d", score, delta)
	}
}

func TestVoteCreditSelfVote(t *testing.T) {
	// An author voting on their own comment never earns a ledger entry,
	// whatever the transition
	const author = 5
	up := models.IDList{}
	down := models.IDList{}
	sequence := []VoteDirection{VoteUp, VoteUp, VoteDown, VoteUp, VoteDown}
	for i, dir := range sequence {
		var delta int
		up, down, delta = applyVote(up, down, author, dir)
		if credit, ok := voteCredit(author, author, delta); ok || credit != 0 {
			t.Errorf("Cast %d: self-vote produced a credit of %d", i, credit)
		}
	}
	// The score still moved even though the balance never did
	if score := len(up) - len(down); score != -1 {
		t.Errorf("Expected final score -1, got %d", score)
	}
}

func TestVoteCreditOtherVoter(t *testing.T) {
	if credit, ok := voteCredit(1, 2, 2); !ok || credit != 2 {
		t.Errorf("Expected credit 2 for a swap by another voter, got %d %v", credit, ok)
	}
	if credit, ok := voteCredit(1, 2, -1); !ok || credit != -1 {
		t.Errorf("Expected credit -1 for a downvote by another voter, got %d %v", credit, ok)
	}
	if _, ok := voteCredit(1, 2, 0); ok {
		t.Error("A zero delta should not produce a ledger entry")
	}
}

func TestVoteCreditsSumToScore(t *testing.T) {
	// With only non-author voters, the author's balance (the sum of all
	// credited deltas) must track the comment's score at every step
	const author = 99
	up := models.IDList{}
	down := models.IDList{}
	balance := 0

	casts := []struct {
		voter uint
		dir   VoteDirection
	}{
		{1, VoteUp}, {2, VoteUp}, {3, VoteDown}, {2, VoteDown},
		{1, VoteUp}, {3, VoteDown}, {3, VoteDown}, {4, VoteDown},
	}
	for i, cast := range casts {
		var delta int
		up, down, delta = applyVote(up, down, cast.voter, cast.dir)
		if credit, ok := voteCredit(author, cast.voter, delta); ok {
			balance += credit
		}
		if score := len(up) - len(down); balance != score {
			t.Fatalf("After cast %d: balance %d diverged from score %d", i, balance, score)
		}
	}
}

func TestGroupComments(t *testing.T) {
	parent := func(id uint) *uint { return &id }
	comments := []models.Comment{
		{ID: 1},
		{ID: 2, ParentID: parent(1)},
		{ID: 3, ParentID: parent(1)},
		{ID: 4, ParentID: parent(2)}, // reply to a reply, not surfaced
	}

	thread := GroupComments(comments)

	if len(thread.Roots) != 1 || thread.Roots[0].ID != 1 {
		t.Fatalf("Expected comment 1 as the only root, got %v", thread.Roots)
	}
	replies := thread.RepliesByParent[1]
	if len(replies) != 2 || replies[0].ID != 2 || replies[1].ID != 3 {
		t.Errorf("Expected comments 2 and 3 as direct replies of 1, got %v", replies)
	}
	if len(thread.RepliesByParent[2]) != 0 {
		t.Error("Replies to replies should not be grouped")
	}
}

func TestGroupCommentsEmpty(t *testing.T) {
	thread := GroupComments(nil)
	if len(thread.Roots) != 0 {
		t.Errorf("Expected no roots, got %d", len(thread.Roots))
	}
}

func TestGroupCommentsPreservesOrder(t *testing.T) {
	parent := func(id uint) *uint { return &id }
	comments := []models.Comment{
		{ID: 10},
		{ID: 11, ParentID: parent(10)},
		{ID: 12, ParentID: parent(10)},
	}
	thread := GroupComments(comments)
	replies := thread.RepliesByParent[10]
	if len(replies) != 2 || replies[0].ID != 11 || replies[1].ID != 12 {
		t.Error("Replies are out of order")
	}
}
