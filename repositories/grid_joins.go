package repositories

import (
	"fmt"
	"strings"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/models"
)

const (
	classificationStoreDataTablePrefix = "object_classificationstore_data_"
	urlSlugsTable                      = "object_url_slugs"
)

// AddGridFeatureJoins registers on the listing one LEFT join per classification store key,
// selects the joined value under the key alias, and adds the filters addressing those
// aliases to the HAVING clause, in join order. Descriptors are validated immediately.
func AddGridFeatureJoins(
	listing *Listing,
	featureJoins []models.FeatureJoin,
	classDefinition *models.ClassDefinition,
	filters models.FilterConditions,
) error {
	if len(featureJoins) == 0 {
		return nil
	}
	if err := validateClassDefinition(listing, classDefinition); err != nil {
		return err
	}
	for _, join := range featureJoins {
		if err := join.Validate(); err != nil {
			return err
		}
	}

	joins := append([]models.FeatureJoin(nil), featureJoins...)
	dataTable := classificationStoreDataTablePrefix + classDefinition.Id

	listing.OnCreateQueryBuilder(func(qb GridQueryBuilder) error {
		table := listing.TableName()
		joined := make(map[string]bool, len(joins))

		for _, join := range joins {
			alias := join.Alias()
			if joined[alias] {
				continue
			}
			joined[alias] = true

			qb.AddJoin(models.JoinDescriptor{
				Type:  models.JoinTypeLeft,
				Table: dataTable,
				Alias: alias,
				Condition: fmt.Sprintf(
					"(%[1]s.id = %[2]s.id and %[1]s.fieldname = %[3]s and %[1]s.groupId=%[4]d"+
						" and %[1]s.keyId=%[5]d and %[1]s.language = %[6]s)",
					alias, table, quoteLiteral(join.Fieldname), join.GroupId, join.KeyId,
					quoteLiteral(join.Language)),
			})
			qb.AddSelect(alias + ".value AS " + alias)
			qb.AndHaving(filters[alias])
		}
		return nil
	})
	return nil
}

// AddSlugJoins is the url slug counterpart of AddGridFeatureJoins.
func AddSlugJoins(
	listing *Listing,
	slugJoins []models.SlugJoin,
	classDefinition *models.ClassDefinition,
	filters models.FilterConditions,
) error {
	if len(slugJoins) == 0 {
		return nil
	}
	if err := validateClassDefinition(listing, classDefinition); err != nil {
		return err
	}
	for _, join := range slugJoins {
		if err := join.Validate(); err != nil {
			return err
		}
	}

	joins := append([]models.SlugJoin(nil), slugJoins...)
	classId := classDefinition.Id
	for _, join := range joins {
		target := ColumnTarget{Key: join.Fieldname}
		if join.IsLocalized() {
			target.Locale = join.Language
		}
		if err := listing.setColumnTarget(join.Alias(), target); err != nil {
			return err
		}
	}

	listing.OnCreateQueryBuilder(func(qb GridQueryBuilder) error {
		table := listing.TableName()
		joined := make(map[string]bool, len(joins))

		for _, join := range joins {
			alias := join.Alias()
			if joined[alias] {
				continue
			}
			joined[alias] = true

			condition := fmt.Sprintf(
				"(%[1]s.objectId = %[2]s.id and %[1]s.classId = %[3]s and %[1]s.fieldname = %[4]s"+
					" and %[1]s.ownertype = 'object'",
				alias, table, quoteLiteral(classId), quoteLiteral(join.Fieldname))
			if join.IsLocalized() {
				condition += fmt.Sprintf(" and %s.position = %s", alias, quoteLiteral(join.Language))
			}
			condition += ")"

			qb.AddJoin(models.JoinDescriptor{
				Type:      models.JoinTypeLeft,
				Table:     urlSlugsTable,
				Alias:     alias,
				Condition: condition,
			})
			qb.AddSelect(alias + ".slug AS " + alias)
			qb.AndHaving(filters[alias])
		}
		return nil
	})
	return nil
}

// AddLocalizedFieldJoins registers on the listing one LEFT join per language on the
// localized table of that language, and selects each field under the join alias. The row
// reads those columns back as the field in that language.
func AddLocalizedFieldJoins(
	listing *Listing,
	localizedJoins []models.LocalizedFieldJoin,
	classDefinition *models.ClassDefinition,
) error {
	if len(localizedJoins) == 0 {
		return nil
	}
	if err := validateClassDefinition(listing, classDefinition); err != nil {
		return err
	}
	for _, join := range localizedJoins {
		if err := join.Validate(); err != nil {
			return err
		}
		if join.Language == listing.Locale {
			return models.ConfigurationError("localized field join %s: the listing already reads %s",
				join.Fieldname, join.Language)
		}
		err := listing.setColumnTarget(join.Alias(), ColumnTarget{Key: join.Fieldname, Locale: join.Language})
		if err != nil {
			return err
		}
	}

	joins := append([]models.LocalizedFieldJoin(nil), localizedJoins...)
	classId := classDefinition.Id

	listing.OnCreateQueryBuilder(func(qb GridQueryBuilder) error {
		table := listing.TableName()
		joinedTables := make(map[string]bool)
		selected := make(map[string]bool, len(joins))

		for _, join := range joins {
			tableAlias := join.TableAlias()
			if !joinedTables[tableAlias] {
				joinedTables[tableAlias] = true
				qb.AddJoin(models.JoinDescriptor{
					Type:      models.JoinTypeLeft,
					Table:     "object_localized_" + classId + "_" + join.Language,
					Alias:     tableAlias,
					Condition: fmt.Sprintf("(%s.id = %s.id)", tableAlias, table),
				})
			}
			alias := join.Alias()
			if selected[alias] {
				continue
			}
			selected[alias] = true
			qb.AddSelect(tableAlias + "." + join.Fieldname + " AS " + alias)
		}
		return nil
	})
	return nil
}

func validateClassDefinition(listing *Listing, classDefinition *models.ClassDefinition) error {
	if listing == nil {
		return models.ConfigurationError("grid joins need a listing")
	}
	if classDefinition == nil {
		return models.ConfigurationError("grid joins need a class definition")
	}
	if !models.IsValidIdentifier(classDefinition.Id) {
		return models.ConfigurationError("invalid class id %q", classDefinition.Id)
	}
	if listing.ClassId != classDefinition.Id {
		return models.ConfigurationError("listing of class %s cannot join data of class %s",
			listing.ClassId, classDefinition.Id)
	}
	return nil
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
