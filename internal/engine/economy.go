package engine

// The wallet is only ever touched through credit and debit, which is what
// keeps it from going negative.

func (s *Service) Points() int { return s.state.Points }

func (s *Service) credit(amount int) error {
	s.state.Points += amount
	return s.saveState()
}

// debit rejects (rather than clamps) a spend the wallet cannot cover.
func (s *Service) debit(amount int) error {
	if s.state.Points < amount {
		return &InsufficientFundsError{Need: amount, Have: s.state.Points}
	}
	s.state.Points -= amount
	return s.saveState()
}
