package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"veyra-io/estates-web/catalog"
	"veyra-io/estates-web/helper"
	"veyra-io/estates-web/models"
)

// loadCatalog fetches the full collection and publishes it through the
// latest-wins store. A fetch that lost the race to a newer one still returns
// its own result for this request; it just doesn't overwrite the snapshot.
func loadCatalog(ctx context.Context) ([]models.Property, error) {
	ticket := Listings.Begin()
	properties, err := API.ListProperties(ctx, catalog.CityAll)
	if err != nil {
		return nil, err
	}

	Listings.Commit(ticket, catalog.CityAll, properties)
	return properties, nil
}

// Home renders the landing page with the featured top-listings section. The
// section is served from the latest successful snapshot when one exists.
func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), RequestTimeout)
		defer cancel()

		activeCity := c.DefaultQuery("city", catalog.CityAll)

		_, properties, ok := Listings.Snapshot()
		if !ok {
			var err error
			properties, err = loadCatalog(ctx)
			if err != nil {
				// The landing page stays up with an empty section.
				properties = nil
			}
		}

		var featured []models.Property
		for _, p := range catalog.FilterByCity(properties, activeCity) {
			if p.IsFeatured {
				featured = append(featured, p)
			}
		}

		c.HTML(http.StatusOK, "home.html", gin.H{
			"Cities":     catalog.Cities,
			"ActiveCity": activeCity,
			"Featured":   featured,
		})
	}
}

// Properties renders the catalog page filtered by the selected city. The
// backend also understands ?city=, but filtering locally from one full fetch
// keeps both paths observably identical.
func Properties() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), RequestTimeout)
		defer cancel()

		city := c.DefaultQuery("city", catalog.CityAll)
		if !catalog.IsKnownCity(city) {
			city = catalog.CityAll
		}

		properties, err := loadCatalog(ctx)
		if err != nil {
			c.HTML(http.StatusOK, "properties.html", gin.H{
				"Cities":     catalog.Cities,
				"ActiveCity": city,
				"Properties": []models.Property{},
				"LoadError":  "We couldn't load the collection right now. Please try again.",
			})
			return
		}

		c.HTML(http.StatusOK, "properties.html", gin.H{
			"Cities":     catalog.Cities,
			"ActiveCity": city,
			"Properties": catalog.FilterByCity(properties, city),
		})
	}
}

// PropertyDetail renders a single record with its galleries and the inquiry
// form. The trailing slug segment is cosmetic; the identifier decides.
func PropertyDetail() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), RequestTimeout)
		defer cancel()

		property, err := API.GetProperty(ctx, c.Param("id"))
		if err != nil {
			status, message := pageErrorFor(err)
			helper.ShowErrorPage(c, status, err, message)
			return
		}

		c.HTML(http.StatusOK, "property_detail.html", gin.H{
			"Property":     property,
			"GalleryNames": models.GalleryNames,
		})
	}
}

// ContactPage renders the general contact form.
func ContactPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"Subjects": []string{
				"Buying a Property",
				"Selling a Property",
				"Private Access",
				"Partnership",
				"Other",
			},
		})
	}
}

// PrivateAccessPage renders the confidential buyer-profile form.
func PrivateAccessPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "private_access.html", gin.H{
			"Features": []string{
				"Sea Facing", "Private Pool", "Helipad", "Smart Home",
				"Private Elevator", "Wine Cellar", "Home Theatre", "Staff Quarters",
			},
		})
	}
}
