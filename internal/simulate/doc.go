package simulate

// Package simulate synthesizes an advancing update sequence by writing the
// same status file format the real updater produces. It exists for simulator
// builds only: the tracker picks the writes up through the filesystem exactly
// as it would from the out-of-process updater.
