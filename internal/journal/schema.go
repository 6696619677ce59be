package journal

const schemaSQL = `
CREATE TABLE IF NOT EXISTS operations (
    id          TEXT PRIMARY KEY,
    kind        TEXT NOT NULL,
    status      TEXT NOT NULL,
    project_id  INTEGER,
    tx_hash     TEXT NOT NULL DEFAULT '',
    payload     BLOB,
    error       TEXT NOT NULL DEFAULT '',
    created_at  TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_operations_status ON operations(status);
`
