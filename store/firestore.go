package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Firestore keeps one document per device in a collection.
type Firestore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
	project    string
}

type firestoreRecord struct {
	Data      string    `firestore:"data"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// OpenFirestore connects to the project, credentials come from the environment.
func OpenFirestore(ctx context.Context, project, collection string) (*Firestore, error) {
	client, err := firestore.NewClient(ctx, project)
	if err != nil {
		return nil, NewError("open", fmt.Sprintf("could not connect to firestore project %q", project), err)
	}
	return NewFirestore(client, project, collection), nil
}

func NewFirestore(client *firestore.Client, project, collection string) *Firestore {
	return &Firestore{
		Client:     client,
		Collection: client.Collection(collection),
		project:    project,
	}
}

// Records returns every document of the collection, ordered by identity.
func (f *Firestore) Records(ctx context.Context) ([]Record, error) {
	iter := f.Collection.Documents(ctx)
	defer iter.Stop()

	var out []Record
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, NewError("read", "failed to list snapshots", err)
		}
		var r firestoreRecord
		if err := doc.DataTo(&r); err != nil {
			return nil, NewError("read", fmt.Sprintf("failed to parse snapshot %q", doc.Ref.ID), err)
		}
		out = append(out, Record{Key: doc.Ref.ID, Data: []byte(r.Data)})
	}
	return out, nil
}

func (f *Firestore) Put(ctx context.Context, key string, data []byte) error {
	_, err := f.Collection.Doc(key).Set(ctx, firestoreRecord{Data: string(data), UpdatedAt: time.Now().UTC()})
	if err != nil {
		return NewError("write", fmt.Sprintf("failed to save snapshot %q", key), err)
	}
	return nil
}

func (f *Firestore) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if _, err := f.Collection.Doc(key).Delete(ctx); err != nil {
			return NewError("delete", fmt.Sprintf("failed to delete snapshot %q", key), err)
		}
	}
	return nil
}

func (f *Firestore) Close() error { return f.Client.Close() }

func (f *Firestore) String() string { return fmt.Sprintf("firestore:%s/%s", f.project, f.Collection.ID) }
