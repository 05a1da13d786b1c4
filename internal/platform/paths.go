package platform

// StatusFileName is the well-known name of the update status file.
const StatusFileName = "current_update_step.json"
