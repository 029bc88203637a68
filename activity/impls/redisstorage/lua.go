package redisstorage

import "github.com/go-redis/redis/v8"

var (
	addActivitiesScript = redis.NewScript(`
		local key = KEYS[1]

		local seen = {}
		for i = 1, #ARGV, 2 do
			if seen[ARGV[i]] or redis.call("HEXISTS", key, ARGV[i]) == 1 then
				return 0
			end
			seen[ARGV[i]] = true
		end

		for i = 1, #ARGV, 2 do
			redis.call("HSET", key, ARGV[i], ARGV[i + 1])
		end

		return 1
	`)
)
