package service

// SetPublicURLFunc replaces the public URL generator so tests can force
// collisions.
func (s *TripService) SetPublicURLFunc(f func() string) { s.publicURL = f }
