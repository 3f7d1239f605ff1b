package logs

const createRunTable = `
CREATE TABLE IF NOT EXISTS runs (
  id integer primary key autoincrement,
  time datetime not null,
  width int not null,
  height int not null,
  moves varchar not null,
  algorithm varchar not null,
  depth int not null,
  value real not null,
  best_column int not null,
  visited int not null,
  evaluated int not null,
  cache_hits int not null,
  cutoffs int not null,
  elapsed_us int not null
)`

const createAlgorithmView = `
CREATE VIEW IF NOT EXISTS algorithm_stats (
  algorithm, depth, runs, mean_nodes, mean_elapsed_us
) AS
SELECT algorithm, depth, COUNT(*),
       AVG(visited + evaluated), AVG(elapsed_us)
 FROM runs
 GROUP BY algorithm, depth
`

const insertStmt = `
INSERT INTO runs (time, width, height, moves, algorithm, depth, value, best_column,
                  visited, evaluated, cache_hits, cutoffs, elapsed_us)
VALUES (:time, :width, :height, :moves, :algorithm, :depth, :value, :best_column,
        :visited, :evaluated, :cache_hits, :cutoffs, :elapsed_us)
`

const selectRuns = `
SELECT * FROM runs ORDER BY id DESC LIMIT ?
`

const selectStats = `
SELECT * FROM algorithm_stats ORDER BY algorithm, depth
`
