package service

import (
	"oko/coaching-app/internal/store"

	"go.uber.org/zap"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// trainerStore returns the seeded state tree with the demo trainer signed in.
func trainerStore() *store.Store {
	state := store.SeedState()
	state.Profile = store.SeedTrainerProfile()
	return store.New(state)
}
