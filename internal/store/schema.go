package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS baseline (
    id                   INTEGER PRIMARY KEY CHECK (id = 1),
    bank_balance         REAL NOT NULL,
    monthly_revenue      REAL NOT NULL,
    monthly_costs        REAL NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS headcount (
    id                   TEXT PRIMARY KEY,
    role                 TEXT NOT NULL,
    salary               REAL NOT NULL,
    start_month          INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS scenarios (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    monthly_spend        REAL NOT NULL,
    one_time_spend       REAL NOT NULL,
    price_change         REAL NOT NULL,
    runway               REAL NOT NULL,
    burn                 REAL NOT NULL,
    saved_at             TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS scenario_headcount (
    scenario_id          TEXT NOT NULL REFERENCES scenarios(id) ON DELETE CASCADE,
    role_id              TEXT NOT NULL,
    role                 TEXT NOT NULL,
    salary               REAL NOT NULL,
    start_month          INTEGER NOT NULL,
    PRIMARY KEY (scenario_id, role_id)
);

CREATE TABLE IF NOT EXISTS budget_items (
    id                   TEXT PRIMARY KEY,
    category             TEXT NOT NULL,
    budgeted             REAL NOT NULL,
    actual               REAL NOT NULL,
    month                TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cashflow_items (
    id                   TEXT PRIMARY KEY,
    description          TEXT NOT NULL,
    amount               REAL NOT NULL,
    category             TEXT NOT NULL,
    flow_type            TEXT NOT NULL,
    flow_date            TEXT NOT NULL,
    recurring            INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS kpis (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    value                REAL NOT NULL,
    target               REAL NOT NULL,
    unit                 TEXT,
    prev_value           REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS alert_rules (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    metric               TEXT NOT NULL,
    condition            TEXT NOT NULL,
    threshold            REAL NOT NULL,
    severity             TEXT NOT NULL,
    enabled              INTEGER NOT NULL DEFAULT 1,
    cooldown_secs        INTEGER NOT NULL,
    last_triggered       TEXT
);

CREATE INDEX IF NOT EXISTS idx_budget_month ON budget_items(month);
CREATE INDEX IF NOT EXISTS idx_cashflow_date ON cashflow_items(flow_date);
CREATE INDEX IF NOT EXISTS idx_scenarios_saved ON scenarios(saved_at);
`
