package schema

// SchemaSQL contains the full database schema initialization script.
// Idempotent: safe to run against an existing database.
const SchemaSQL = `
-- Berry Ledger
CREATE TABLE IF NOT EXISTS accounts (
    user_id VARCHAR(64) PRIMARY KEY,
    balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
    total_earned BIGINT NOT NULL DEFAULT 0 CHECK (total_earned >= 0),
    total_spent BIGINT NOT NULL DEFAULT 0 CHECK (total_spent >= 0),
    last_accrual TIMESTAMPTZ NOT NULL DEFAULT to_timestamp(0),
    CHECK (balance = total_earned - total_spent)
);

-- Owned Fruits: one row per acquisition event, duplicates are rows
CREATE TABLE IF NOT EXISTS owned_fruits (
    id UUID PRIMARY KEY,
    owner_id VARCHAR(64) NOT NULL,
    fruit_id VARCHAR(100) NOT NULL,
    acquired_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_owned_fruits_owner ON owned_fruits (owner_id);
CREATE INDEX IF NOT EXISTS idx_owned_fruits_owner_fruit ON owned_fruits (owner_id, fruit_id);

-- Action Cooldowns and timed windows (raid protection included)
CREATE TABLE IF NOT EXISTS user_cooldowns (
    user_id VARCHAR(64) NOT NULL,
    action VARCHAR(50) NOT NULL,
    last_used TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (user_id, action)
);
`
