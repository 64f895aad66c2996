package metrics

// IncrementCommentCreated increments the posted comments counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// IncrementCommentDeleted increments the deleted comments counter
func (m *Metrics) IncrementCommentDeleted() {
	m.safeExecute("IncrementCommentDeleted", func() {
		m.CommentDeletedTotal.Inc()
	})
}

// RecordVoteAdjustment counts an applied inc_votes by its sign
func (m *Metrics) RecordVoteAdjustment(delta int64) {
	m.safeExecute("RecordVoteAdjustment", func() {
		m.ArticleVoteAdjustmentsTotal.WithLabelValues(voteDirection(delta)).Inc()
	})
}

func voteDirection(delta int64) string {
	switch {
	case delta > 0:
		return "up"
	case delta < 0:
		return "down"
	default:
		return "none"
	}
}

func (m *Metrics) SetArticlesTotal(count int64) {
	m.safeExecute("SetArticlesTotal", func() {
		m.ArticlesTotal.Set(float64(count))
	})
}

func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}
