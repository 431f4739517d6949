package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Core User Information
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username VARCHAR(64) UNIQUE NOT NULL,
    external_id VARCHAR(255) UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Characters
CREATE TABLE IF NOT EXISTS characters (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    name VARCHAR(64) NOT NULL,
    character_class VARCHAR(32) NOT NULL,
    level INTEGER NOT NULL DEFAULT 1,
    experience INTEGER NOT NULL DEFAULT 0,
    health INTEGER NOT NULL,
    max_health INTEGER NOT NULL,
    mana INTEGER NOT NULL,
    max_mana INTEGER NOT NULL,
    strength INTEGER NOT NULL,
    intelligence INTEGER NOT NULL,
    dexterity INTEGER NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (user_id, name)
);

CREATE INDEX IF NOT EXISTS idx_characters_user_id ON characters(user_id);

-- Game Sessions (inventory, quest progress and the clock travel as one JSONB document)
CREATE TABLE IF NOT EXISTS game_states (
    id SERIAL PRIMARY KEY,
    character_id INTEGER NOT NULL UNIQUE REFERENCES characters(id) ON DELETE CASCADE,
    current_location VARCHAR(100) NOT NULL,
    inventory JSONB NOT NULL DEFAULT '{}',
    quest_progress JSONB NOT NULL DEFAULT '{}',
    clock JSONB NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Generated Scene Illustrations
CREATE TABLE IF NOT EXISTS game_images (
    id SERIAL PRIMARY KEY,
    game_state_id INTEGER NOT NULL REFERENCES game_states(id) ON DELETE CASCADE,
    prompt TEXT NOT NULL,
    url TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_game_images_state ON game_images(game_state_id, created_at DESC);

-- Generated Narration Clips
CREATE TABLE IF NOT EXISTS character_audio (
    id SERIAL PRIMARY KEY,
    character_id INTEGER NOT NULL REFERENCES characters(id) ON DELETE CASCADE,
    voice VARCHAR(32) NOT NULL,
    text TEXT NOT NULL,
    url TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_character_audio_character ON character_audio(character_id, created_at DESC);
`
