package ingestion

const defaultBroadcastWorkers = 4
