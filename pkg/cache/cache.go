package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/convox/logger"
)

type item struct {
	value   interface{}
	expires time.Time
}

var (
	collections = map[string]map[string]item{}
	lock        = sync.Mutex{}
	log         = logger.New("ns=s3bench.cache")
)

func Get(collection string, key interface{}) interface{} {
	hash, err := hashKey(key)
	if err != nil {
		log.Logf("fn=get collection=%q status=error error=%q", collection, err)
		return nil
	}

	lock.Lock()
	defer lock.Unlock()

	c, ok := collections[collection]
	if !ok {
		return nil
	}

	i, ok := c[hash]
	if !ok {
		return nil
	}

	if i.expires.Before(time.Now()) {
		log.Logf("fn=get collection=%q key=%q status=expired", collection, hash)
		delete(c, hash)
		return nil
	}

	return i.value
}

func Set(collection string, key, value interface{}, ttl time.Duration) error {
	hash, err := hashKey(key)
	if err != nil {
		log.Logf("fn=set collection=%q status=error error=%q", collection, err)
		return err
	}

	lock.Lock()
	defer lock.Unlock()

	if collections[collection] == nil {
		collections[collection] = map[string]item{}
	}

	collections[collection][hash] = item{
		value:   value,
		expires: time.Now().Add(ttl),
	}

	return nil
}

func Clear(collection string, key interface{}) error {
	hash, err := hashKey(key)
	if err != nil {
		return err
	}

	lock.Lock()
	defer lock.Unlock()

	if collections[collection] != nil {
		delete(collections[collection], hash)
	}

	return nil
}

func hashKey(key interface{}) (string, error) {
	data, err := json.Marshal(key)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", sha256.Sum256(data))[0:32], nil
}
