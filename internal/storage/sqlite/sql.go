package sqlite

const schemaSQL = `
CREATE TABLE IF NOT EXISTS reviews (
  seq     INTEGER PRIMARY KEY AUTOINCREMENT,
  id      TEXT    NOT NULL UNIQUE,
  author  TEXT    NOT NULL DEFAULT '',
  rating  INTEGER NOT NULL DEFAULT 0,
  content TEXT    NOT NULL DEFAULT '',
  service TEXT    NOT NULL DEFAULT '',
  date    TEXT    NOT NULL DEFAULT ''
)
`

const insertReviewSQL = `
INSERT INTO reviews (id, author, rating, content, service, date)
VALUES (?, ?, ?, ?, ?, ?)
`

// seq DESC == insertion order reversed == newest first.
const listReviewsSQL = `
SELECT id, author, rating, content, service, date
FROM reviews
ORDER BY seq DESC
`

const deleteReviewSQL = `DELETE FROM reviews WHERE id = ?`
